// Package order implements the immutable Order aggregate: the confirmation of
// a completed place-order transaction.
//
// An order is assembled exactly once from a transaction snapshot (see the
// services package) and owns all of its nested sequences: accepted offers,
// discounts and payment methods are stamped copies, never shared references
// back into the transaction. The inquiry key derived during assembly lets a
// customer retrieve the order by theater, confirmation number and telephone
// without authentication credentials.
package order
