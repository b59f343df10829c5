// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports. Repositories
// receive the db.Postgres handle via constructor injection and run every
// operation through its scoped transaction helper, so pooled connections are
// always returned.
package repo
