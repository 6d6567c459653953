// workloads/pool.go
package workloads

import "sync"

// sumJob is one chunk handed to the pool.
type sumJob struct {
	data []float64
	out  chan<- float64
}

// sumPool is a fixed-size worker pool summing slice chunks. It belongs to
// the single variant that benchmarks it: started by that variant's Setup,
// stopped by its Cleanup, so the pool never leaks into other variants.
type sumPool struct {
	workers int
	jobs    chan sumJob
	wg      sync.WaitGroup
}

func newSumPool(workers int) *sumPool {
	return &sumPool{workers: workers}
}

func (p *sumPool) start() {
	p.jobs = make(chan sumJob)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				var s float64
				for _, v := range job.data {
					s += v
				}
				job.out <- s
			}
		}()
	}
}

func (p *sumPool) stop() {
	if p.jobs == nil {
		return
	}
	close(p.jobs)
	p.wg.Wait()
	p.jobs = nil
}

// sum splits data into one chunk per worker and combines the partial sums.
func (p *sumPool) sum(data []float64) float64 {
	out := make(chan float64, p.workers)
	chunk := (len(data) + p.workers - 1) / p.workers
	chunks := 0
	for start := 0; start < len(data); start += chunk {
		end := start + chunk
		if end > len(data) {
			end = len(data)
		}
		p.jobs <- sumJob{data: data[start:end], out: out}
		chunks++
	}

	var total float64
	for i := 0; i < chunks; i++ {
		total += <-out
	}
	return total
}
