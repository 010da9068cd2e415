package main

// Exit codes.
const (
	ExitSuccess        = 0 // Success
	ExitError          = 1 // General error (invalid arguments, config, archive, output)
	ExitQueryError     = 2 // Malformed query, rejected before any retrieval
	ExitRetrievalError = 3 // Source unreachable or returned an unusable payload
)
