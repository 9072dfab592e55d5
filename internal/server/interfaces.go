package server

// Server is the lifecycle contract shared by the transport servers managed
// by this package. [NewServer] returns an aggregate that runs every enabled
// transport behind this interface.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
