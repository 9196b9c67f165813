package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllJobs(t *testing.T) {
	p := NewPool(3, 0)

	var count int64
	for i := 0; i < 20; i++ {
		p.Submit(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	p.Close()

	if count != 20 {
		t.Errorf("ran %d jobs, want 20", count)
	}
}

func TestPoolLimitsConcurrency(t *testing.T) {
	p := NewPool(2, 0)

	var mu sync.Mutex
	active, peak := 0, 0
	for i := 0; i < 10; i++ {
		p.Submit(func() {
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		})
	}
	p.Close()

	if peak > 2 {
		t.Errorf("peak concurrency %d, want at most 2", peak)
	}
}

func TestPoolSpacesJobStarts(t *testing.T) {
	p := NewPool(2, 20*time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		p.Submit(func() {})
	}
	p.Close()

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("3 jobs finished in %v, want at least 40ms with 20ms spacing", elapsed)
	}
}
