// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the ticketing system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAssembler: a domain service transforming a completed place-order
//     transaction into an immutable Order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
