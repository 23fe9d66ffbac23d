// Package kernel provides core domain primitives shared by every aggregate
// of the Varto platform. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Money: A fixed-point monetary value backed by decimal arithmetic
//   - Address: A structured delivery destination
//   - Role and Actor: The identity and authority of the party invoking an operation
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, suitable for concurrent use.
package kernel
