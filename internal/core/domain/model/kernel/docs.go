// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides the UUID value object, which wraps
// github.com/google/uuid to give entity identifiers domain-specific behavior:
// constructors that guarantee validity, value-based equality, and a Validate
// method that rejects zero values. Aggregates in the client, product, and order
// packages use kernel.UUID for their own identity and for references to other
// aggregates.
package kernel
