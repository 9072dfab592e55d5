package workers

import (
	"context"
	"time"

	"github.com/campuskit/auth-service/internal/logger"
)

// writeTimeout bounds a single queued write once it reaches the database.
const writeTimeout = 5 * time.Second

type auditJob struct {
	name string
	run  func(ctx context.Context) error
}

// AuditWriter is the background worker behind the best-effort write path:
// failed-login records, refresh token saves and cleanups. Producers enqueue
// without blocking; when the queue is full the job is dropped and the caller
// is told so.
type AuditWriter struct {
	jobs   chan auditJob
	done   chan struct{}
	logger *logger.Logger
}

// NewAuditWriter constructs an AuditWriter with the given queue capacity.
func NewAuditWriter(queueSize int, logger *logger.Logger) *AuditWriter {
	return &AuditWriter{
		jobs:   make(chan auditJob, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Enqueue hands a named job to the writer. It never blocks: when the queue
// is at capacity the job is rejected and false is returned.
func (w *AuditWriter) Enqueue(name string, job func(ctx context.Context) error) bool {
	select {
	case w.jobs <- auditJob{name: name, run: job}:
		return true
	default:
		w.logger.Warn().Str("job", name).Msg("audit queue is full, dropping job")
		return false
	}
}

// Run starts the consumer goroutine. It drains the queue until Close is
// called, then finishes the remaining jobs before signalling completion.
func (w *AuditWriter) Run() {
	go func() {
		defer close(w.done)
		for job := range w.jobs {
			w.process(job)
		}
	}()
}

// Close stops accepting new jobs and blocks until every queued job has been
// processed. Safe to call once, after all producers have stopped.
func (w *AuditWriter) Close() {
	close(w.jobs)
	<-w.done
}

func (w *AuditWriter) process(job auditJob) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := job.run(ctx); err != nil {
		w.logger.Err(err).Str("job", job.name).Msg("audit job failed")
		return
	}
	w.logger.Debug().Str("job", job.name).Msg("audit job done")
}
