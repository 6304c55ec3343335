// Package store defines the persistence interfaces the API is built
// against, together with the sentinel errors implementations must
// return. Concrete implementations live under internal/platform.
package store
