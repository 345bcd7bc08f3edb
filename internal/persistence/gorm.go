package persistence

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// CollectionRecord stores one whole collection as a JSON document.
type CollectionRecord struct {
	Name      string         `gorm:"primaryKey;size:32"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"index"`
}

func (CollectionRecord) TableName() string {
	return "competition_collections"
}

// Gorm persists collections in a SQL table. All writes of one call commit in
// a single transaction. Subscribers are notified after every commit and, when
// a poll interval is set, whenever another process changes the table.
type Gorm struct {
	db           *gorm.DB
	pollInterval time.Duration
	subs         subscribers

	mu      sync.Mutex
	seen    time.Time
	polling bool
}

// NewGorm creates the SQL backend. A zero pollInterval disables polling for
// changes made by other processes.
func NewGorm(db *gorm.DB, pollInterval time.Duration) *Gorm {
	return &Gorm{db: db, pollInterval: pollInterval}
}

// Migrate creates the collections table.
func (g *Gorm) Migrate() error {
	return g.db.AutoMigrate(&CollectionRecord{})
}

func (g *Gorm) Write(ctx context.Context, writes ...competition.CollectionWrite) error {
	encoded, err := encodeWrites(writes)
	if err != nil {
		return err
	}

	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range Collections {
			b, ok := encoded[name]
			if !ok {
				continue
			}
			record := CollectionRecord{Name: string(name), Payload: datatypes.JSON(b), UpdatedAt: time.Now()}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
			}).Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := g.subs.publish(g.loader(ctx)); err != nil {
		return fmt.Errorf("reload after write: %w", err)
	}
	return nil
}

// Subscribe delivers the stored snapshot and every later change until ctx is
// done. The change poller runs while at least one subscriber is left.
func (g *Gorm) Subscribe(ctx context.Context, fn func(competition.Snapshot)) error {
	id, err := g.subs.subscribe(g.loader(ctx), fn)
	if err != nil {
		return err
	}
	g.startPolling()

	go func() {
		<-ctx.Done()
		g.subs.remove(id)
	}()
	return nil
}

// loader reads the table and records the version it saw.
func (g *Gorm) loader(ctx context.Context) func() (competition.Snapshot, error) {
	return func() (competition.Snapshot, error) {
		snap, version, err := g.load(ctx)
		if err != nil {
			return competition.Snapshot{}, err
		}
		g.markSeen(version)
		return snap, nil
	}
}

func (g *Gorm) startPolling() {
	if g.pollInterval <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.polling {
		return
	}
	g.polling = true
	go g.poll()
}

// stopPolling ends the poller once the last subscriber is gone. A
// subscriber added afterwards starts a new one.
func (g *Gorm) stopPolling() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.subs.len() > 0 {
		return false
	}
	g.polling = false
	return true
}

// poll reloads the table whenever its newest update time moves past the last
// version this process has seen, which picks up writes of other processes.
func (g *Gorm) poll() {
	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if g.stopPolling() {
			return
		}
		g.pollOnce()
	}
}

func (g *Gorm) pollOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	latest, err := g.version(ctx)
	if err != nil {
		log.Printf("[PERSIST_ERROR] Failed to poll collections: %v", err)
		return
	}
	if !g.changedSince(latest) {
		return
	}
	if err := g.subs.publish(g.loader(ctx)); err != nil {
		log.Printf("[PERSIST_ERROR] Failed to reload collections: %v", err)
		return
	}
	log.Printf("[PERSIST] External change detected, reloaded collections")
}

func (g *Gorm) markSeen(version time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if version.After(g.seen) {
		g.seen = version
	}
}

func (g *Gorm) changedSince(latest time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return latest.After(g.seen)
}

func (g *Gorm) version(ctx context.Context) (time.Time, error) {
	var records []CollectionRecord
	if err := g.db.WithContext(ctx).Select("name", "updated_at").Find(&records).Error; err != nil {
		return time.Time{}, err
	}
	return newest(records), nil
}

func (g *Gorm) load(ctx context.Context) (competition.Snapshot, time.Time, error) {
	var records []CollectionRecord
	if err := g.db.WithContext(ctx).Find(&records).Error; err != nil {
		return competition.Snapshot{}, time.Time{}, fmt.Errorf("failed to load collections: %w", err)
	}
	raw := make(map[competition.Collection][]byte, len(records))
	for _, r := range records {
		raw[competition.Collection(r.Name)] = []byte(r.Payload)
	}
	snap, err := decodeSnapshot(raw)
	if err != nil {
		return competition.Snapshot{}, time.Time{}, err
	}
	return snap, newest(records), nil
}

func newest(records []CollectionRecord) time.Time {
	var t time.Time
	for _, r := range records {
		if r.UpdatedAt.After(t) {
			t = r.UpdatedAt
		}
	}
	return t
}
