// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeySubject = "subject"
	ContextKeyRoles   = "roles"
)
