// Package domain contains the core domain model for the clans service.
//
// This package defines:
//   - Clan, the single entity
//   - Sort and pagination value types for listing clans
//   - Domain errors and the helpers used to classify them
//
// The package has no infrastructure concerns: no SQL, no HTTP.
package domain
