// Package workers provides a small bounded goroutine pool with rate
// limiting, used to fan out external API calls without hammering
// upstream providers.
package workers

import (
	"sync"
	"time"
)

// Pool runs submitted jobs on a fixed number of goroutines, spacing
// job starts by a minimum interval.
type Pool struct {
	jobs    chan func()
	wg      sync.WaitGroup
	limiter *time.Ticker
}

// NewPool starts size worker goroutines. minInterval is the minimum
// time between job starts across the whole pool; zero disables rate
// limiting.
func NewPool(size int, minInterval time.Duration) *Pool {
	p := &Pool{jobs: make(chan func())}
	if minInterval > 0 {
		p.limiter = time.NewTicker(minInterval)
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.limiter != nil {
			<-p.limiter.C
		}
		job()
	}
}

// Submit hands a job to the pool. It blocks while all workers are busy.
func (p *Pool) Submit(job func()) {
	p.jobs <- job
}

// Close stops accepting jobs and waits for in-flight ones to finish.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	if p.limiter != nil {
		p.limiter.Stop()
	}
}
