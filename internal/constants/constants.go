package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	// DefaultPageLimit is the page size used by the fetch-all loops against
	// the upstream API.
	DefaultPageLimit = 100
)
