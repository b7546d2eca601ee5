// Package services provides domain services for the ordering system:
// business operations that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DraftCalculator: pure pricing of a customer basket into an order draft
package services
