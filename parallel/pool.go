package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job.
	WorkerFunc func(func())
	// WaitFunc blocks until scheduled jobs finish. With done set the pool
	// stops accepting jobs.
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs jobs on a fixed number of goroutines. A pool of one worker runs
// every job synchronously inside Do.
type Pool struct {
	wg      sync.WaitGroup
	Workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Start creates a pool. numWorkers < 1 selects DefaultWorkers.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = DefaultWorkers()
	}

	pool := &Pool{
		Workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers == 1 {
		return pool
	}

	jobs := make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range jobs {
				f()
			}
		})
	}

	pool.Do = func(f func()) {
		jobs <- f
	}
	pool.Cancel = sync.OnceFunc(func() { close(jobs) })
	pool.Wait = func(done bool) {
		if done {
			pool.Cancel()
		}
		pool.wg.Wait()
	}

	return pool
}
