package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

func sampleSnapshot() competition.Snapshot {
	return competition.Snapshot{
		Teams: []competition.Team{{
			ID:       1,
			Name:     "Vepar",
			Category: competition.CategoryMen,
			Members:  []competition.Competitor{{ID: 1, FirstName: "Ivo", LastName: "Ivić"}},
		}},
		Disciplines: []competition.Discipline{{ID: 1, Name: "TRAP", Category: competition.CategoryMen}},
		Results:     []competition.Result{{ID: 1, CompetitorID: 1, DisciplineID: 1, Points: 4}},
	}
}

func TestMemorySubscribeDeliversCurrentState(t *testing.T) {
	m := NewMemory()
	if err := m.Seed(sampleSnapshot()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var got competition.Snapshot
	if err := m.Subscribe(context.Background(), func(s competition.Snapshot) { got = s }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if len(got.Teams) != 1 || got.Teams[0].Name != "Vepar" {
		t.Fatalf("unexpected teams: %+v", got.Teams)
	}
	if len(got.Results) != 1 || got.Results[0].Points != 4 {
		t.Fatalf("unexpected results: %+v", got.Results)
	}
}

func TestMemoryEmptyCollectionsDecodeEmpty(t *testing.T) {
	m := NewMemory()
	var got competition.Snapshot
	if err := m.Subscribe(context.Background(), func(s competition.Snapshot) { got = s }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if got.Teams == nil || got.Disciplines == nil || got.Results == nil {
		t.Fatalf("expected empty, non-nil collections: %+v", got)
	}
}

func TestMemoryWriteEchoesOnlyChangedCollections(t *testing.T) {
	m := NewMemory()
	if err := m.Seed(sampleSnapshot()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var calls int
	var last competition.Snapshot
	err := m.Subscribe(context.Background(), func(s competition.Snapshot) {
		calls++
		last = s
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	err = m.Write(context.Background(), competition.CollectionWrite{
		Collection: competition.CollectionResults,
		Payload:    []competition.Result{},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if calls != 2 {
		t.Fatalf("expected initial delivery plus one echo, got %d", calls)
	}
	if len(last.Results) != 0 {
		t.Fatalf("results not replaced: %+v", last.Results)
	}
	if len(last.Teams) != 1 {
		t.Fatalf("teams should be untouched: %+v", last.Teams)
	}
}

func TestMemoryRejectsUnknownCollection(t *testing.T) {
	m := NewMemory()
	err := m.Write(context.Background(), competition.CollectionWrite{Collection: "venues", Payload: []int{}})
	if err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestMemoryWriteHonoursCancelledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Write(ctx, competition.CollectionWrite{Collection: competition.CollectionTeams, Payload: []competition.Team{}})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestMemorySubscriptionEndsWithContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	if err := m.Subscribe(ctx, func(competition.Snapshot) {}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if m.subs.len() != 1 {
		t.Fatalf("expected one subscriber, got %d", m.subs.len())
	}

	cancel()
	deadline := time.Now().Add(time.Second)
	for m.subs.len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber not removed after cancel")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDeliveredSnapshotsAreIndependentCopies(t *testing.T) {
	m := NewMemory()
	if err := m.Seed(sampleSnapshot()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var first, second competition.Snapshot
	_ = m.Subscribe(context.Background(), func(s competition.Snapshot) { first = s })
	_ = m.Subscribe(context.Background(), func(s competition.Snapshot) { second = s })

	first.Teams[0].Members[0].FirstName = "Promijenjeno"
	if second.Teams[0].Members[0].FirstName != "Ivo" {
		t.Fatal("subscribers share snapshot memory")
	}
}

func TestMemoryInitialDeliveryPrecedesConcurrentWrite(t *testing.T) {
	m := NewMemory()

	var mu sync.Mutex
	var seen []int
	first := true
	written := make(chan error, 1)
	err := m.Subscribe(context.Background(), func(s competition.Snapshot) {
		if first {
			first = false
			go func() {
				written <- m.Write(context.Background(), competition.CollectionWrite{
					Collection: competition.CollectionTeams,
					Payload:    sampleSnapshot().Teams,
				})
			}()
			time.Sleep(50 * time.Millisecond)
		}
		mu.Lock()
		seen = append(seen, len(s.Teams))
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := <-written; err != nil {
		t.Fatalf("write: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("team counts in delivery order = %v, want [0 1]", seen)
	}
}
