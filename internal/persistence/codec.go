// Package persistence holds the storage backends the competition store
// writes whole collections to.
package persistence

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/DhavalSuthar-24/lovacko/internal/competition"
)

// Collections lists every collection in the order they are loaded.
var Collections = []competition.Collection{
	competition.CollectionTeams,
	competition.CollectionDisciplines,
	competition.CollectionResults,
}

func encodeWrites(writes []competition.CollectionWrite) (map[competition.Collection][]byte, error) {
	out := make(map[competition.Collection][]byte, len(writes))
	for _, w := range writes {
		if !knownCollection(w.Collection) {
			return nil, fmt.Errorf("unknown collection %q", w.Collection)
		}
		b, err := json.Marshal(w.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", w.Collection, err)
		}
		out[w.Collection] = b
	}
	return out, nil
}

// decodeSnapshot builds a snapshot from raw collection payloads. Missing or
// null collections decode to empty slices.
func decodeSnapshot(raw map[competition.Collection][]byte) (competition.Snapshot, error) {
	var snap competition.Snapshot
	targets := map[competition.Collection]interface{}{
		competition.CollectionTeams:       &snap.Teams,
		competition.CollectionDisciplines: &snap.Disciplines,
		competition.CollectionResults:     &snap.Results,
	}
	for name, target := range targets {
		b := raw[name]
		if len(b) == 0 {
			continue
		}
		if err := json.Unmarshal(b, target); err != nil {
			return competition.Snapshot{}, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	return snap.Clone(), nil
}

func knownCollection(c competition.Collection) bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// subscribers is the observer list shared by the backends. Deliveries hold
// deliver, and each one reads the latest state under it, so no subscriber
// sees an older snapshot after a newer one.
type subscribers struct {
	deliver sync.Mutex

	mu   sync.Mutex
	next int
	fns  map[int]func(competition.Snapshot)
}

// subscribe delivers the current state to fn and registers it for later
// publications.
func (s *subscribers) subscribe(load func() (competition.Snapshot, error), fn func(competition.Snapshot)) (int, error) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	snap, err := load()
	if err != nil {
		return 0, err
	}
	id := s.add(fn)
	fn(snap)
	return id, nil
}

func (s *subscribers) add(fn func(competition.Snapshot)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func(competition.Snapshot))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return id
}

func (s *subscribers) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fns, id)
}

func (s *subscribers) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}

// publish loads the current state and hands a copy to every subscriber.
func (s *subscribers) publish(load func() (competition.Snapshot, error)) error {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	snap, err := load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	ids := make([]int, 0, len(s.fns))
	for id := range s.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(competition.Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.fns[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
	return nil
}
