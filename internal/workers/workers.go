package workers

// Workers aggregates background workers so the application can start them
// with a single call.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into an aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
