package persistence

import (
	"context"
	"sync"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// Memory keeps JSON encoded collections in process. Writes are echoed to
// subscribers synchronously, before Write returns.
type Memory struct {
	mu   sync.Mutex
	data map[competition.Collection][]byte
	subs subscribers
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[competition.Collection][]byte)}
}

// Seed replaces all collections with snap and notifies subscribers.
func (m *Memory) Seed(snap competition.Snapshot) error {
	snap = snap.Clone()
	return m.Write(context.Background(),
		competition.CollectionWrite{Collection: competition.CollectionTeams, Payload: snap.Teams},
		competition.CollectionWrite{Collection: competition.CollectionDisciplines, Payload: snap.Disciplines},
		competition.CollectionWrite{Collection: competition.CollectionResults, Payload: snap.Results},
	)
}

func (m *Memory) Write(ctx context.Context, writes ...competition.CollectionWrite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	encoded, err := encodeWrites(writes)
	if err != nil {
		return err
	}

	m.mu.Lock()
	for name, b := range encoded {
		m.data[name] = b
	}
	m.mu.Unlock()

	return m.subs.publish(m.current)
}

func (m *Memory) Subscribe(ctx context.Context, fn func(competition.Snapshot)) error {
	id, err := m.subs.subscribe(m.current, fn)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		m.subs.remove(id)
	}()
	return nil
}

func (m *Memory) current() (competition.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeSnapshot(m.data)
}
