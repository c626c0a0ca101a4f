// Package transaction implements the place-order transaction aggregate and
// its authorize actions.
//
// A place-order transaction accumulates independently produced sub-results:
// seat holds in the external reservation system, card authorizations from the
// payment gateway, voucher redemptions and loyalty-point awards. Each is
// modeled as a member of the AuthorizeAction tagged union, so purpose-specific
// payloads can only be read after classification.
//
// The aggregate is handed to order assembly as an immutable snapshot once the
// customer confirms; see the services package for the assembly algorithm.
package transaction
