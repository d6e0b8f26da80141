// Package kernel provides core domain primitives for the shootdesk system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Address: A postal address value object with ISO-3166 country and coordinate validation
//   - Slug: A URL-safe natural key normalized from arbitrary text
//   - Currency: An ISO-4217 style three-letter currency code
//   - Removal: An embeddable soft-delete state shared by all aggregate roots
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. Value objects are immutable and
// reconstructed via withers rather than mutated, making them safe for concurrent use.
package kernel
