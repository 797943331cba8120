package regiontree

import (
	"sync"
	"testing"

	"github.com/npillmayer/regiontree/policy"
)

func TestLockedConcurrentClients(t *testing.T) {
	const workers, rounds = 8, 50
	tree := newTree(t, Config[int64, int64]{Policy: policy.AccumulateSum[int64]{}, Rows: 64, Cols: 64})
	locked := NewLocked(tree)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			for i := range rounds {
				if err := locked.Update(row, 0, row+7, 63, 1); err != nil {
					t.Errorf("worker %d: update failed: %v", row, err)
					return
				}
				if _, err := locked.At(row, i%64); err != nil {
					t.Errorf("worker %d: query failed: %v", row, err)
					return
				}
				_ = locked.Stats()
			}
		}(w * 8)
	}
	wg.Wait()
	sum, err := locked.Query(0, 0, 63, 63)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(workers * rounds * 8 * 64); sum != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}
	if s := locked.Stats(); s.Updates != workers*rounds || s.Queries != workers*rounds+1 {
		t.Errorf("unexpected counters %+v", s)
	}
	err = locked.Do(func(tree *Tree[int64, int64]) error {
		checkTree(t, tree)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	created := locked.Stats().NodesCreated
	if freed := locked.Destroy(); uint64(freed) != created {
		t.Errorf("destroy released %d of %d nodes", freed, created)
	}
}

func TestLockedDoIsAtomic(t *testing.T) {
	tree := newTree(t, Config[int, int]{Policy: policy.AssignMax[int]{}, Rows: 10, Cols: 10})
	locked := NewLocked(tree)
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// read-modify-write of cell (0,0); must not lose increments
			_ = locked.Do(func(tree *Tree[int, int]) error {
				old, err := tree.At(0, 0)
				if err != nil {
					return err
				}
				return tree.UpdateAt(0, 0, old+1)
			})
		}()
	}
	wg.Wait()
	if v, _ := locked.At(0, 0); v != 10 {
		t.Errorf("cell (0,0) = %d, want 10", v)
	}
	if err := locked.UpdateAt(9, 9, 42); err != nil {
		t.Fatal(err)
	}
	if v, _ := locked.Query(0, 0, 9, 9); v != 42 {
		t.Errorf("max = %d, want 42", v)
	}
}
