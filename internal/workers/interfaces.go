// Package workers provides the background workers of the authentication
// service and an aggregate for running them together.
//
// The only worker at the moment is the [AuditWriter], which persists
// best-effort audit records (failed login attempts, refresh token
// bookkeeping) off the request path.
package workers

// Worker is implemented by any long-running background process.
//
// Run starts the worker. Implementations either block for the duration of
// their work or spawn goroutines internally.
type Worker interface {
	Run()
}
