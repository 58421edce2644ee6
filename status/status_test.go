package status

import (
	"sync"
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	reg := NewRegistry()

	a := reg.Int("engine.ticks")
	b := reg.Int("engine.ticks")
	if a != b {
		t.Error("Expected same pointer for repeated key")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3 through cached pointer, got %d", b.Load())
	}
}

func TestRegistryTypeSeparation(t *testing.T) {
	reg := NewRegistry()

	reg.Int("pool.live").Store(7)
	reg.Float("pool.live").Set(1.5)

	if reg.Int("pool.live").Load() != 7 {
		t.Errorf("Expected int metric 7, got %d", reg.Int("pool.live").Load())
	}
	if reg.Float("pool.live").Get() != 1.5 {
		t.Errorf("Expected float metric 1.5, got %f", reg.Float("pool.live").Get())
	}
	if reg.Count() != 2 {
		t.Errorf("Expected count 2, got %d", reg.Count())
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat

	f.Set(1.0)
	if got := f.Add(0.5); got != 1.5 {
		t.Errorf("Expected 1.5, got %f", got)
	}
	if f.Get() != 1.5 {
		t.Errorf("Expected stored 1.5, got %f", f.Get())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(1)
			}
		}()
	}
	wg.Wait()

	if f.Get() != 8000 {
		t.Errorf("Expected 8000 after concurrent adds, got %f", f.Get())
	}
}

func TestWalkIntsSortedOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Int("render.segments").Store(2)
	reg.Int("engine.ticks").Store(10)
	reg.Int("pool.live").Store(4)

	var keys []string
	reg.WalkInts(func(key string, val int64) {
		keys = append(keys, key)
	})

	want := []string{"engine.ticks", "pool.live", "render.segments"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %q at %d, got %q", want[i], i, keys[i])
		}
	}
}

func TestRegistryConcurrentGet(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Int("engine.ticks").Add(1)
		}()
	}
	wg.Wait()

	if reg.Int("engine.ticks").Load() != 8 {
		t.Errorf("Expected 8, got %d", reg.Int("engine.ticks").Load())
	}
}
