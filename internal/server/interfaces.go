package server

// Server is the lifecycle contract every inbound transport of the note
// keeper satisfies. The aggregate server in this package drives any number
// of them: it runs each one and shuts them all down when a termination
// signal arrives.
type Server interface {
	// RunServer starts accepting requests and blocks until the transport
	// stops serving.
	RunServer()

	// Shutdown drains in-flight requests and releases the listener.
	Shutdown()
}
