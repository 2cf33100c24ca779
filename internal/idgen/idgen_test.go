package idgen

import (
	"strings"
	"sync"
	"testing"
)

func TestNewCarriesPrefix(t *testing.T) {
	id := New(PrefixOrder)
	if !strings.HasPrefix(id, "ORD-") {
		t.Errorf("id = %q, want ORD- prefix", id)
	}
	if len(id) <= len("ORD-") {
		t.Errorf("id = %q has no numeric part", id)
	}
}

func TestNewUniqueUnderConcurrency(t *testing.T) {
	const workers = 50
	const perWorker = 20

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := New(PrefixLead)
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
