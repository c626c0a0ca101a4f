package transaction

// CreditCardObject is the request half of a card authorization.
type CreditCardObject struct {
	// GatewayOrderID is the identifier this transaction registered with the
	// payment gateway before authorizing.
	GatewayOrderID string

	// Amount is the amount authorized against the card.
	Amount int
}

// CreditCardResult is the response half of a card authorization.
type CreditCardResult struct {
	// Price is the amount the gateway settled.
	Price int

	// GatewayOrderID is the gateway's transaction/order identifier, recorded
	// on the order as the payment method id.
	GatewayOrderID string
}

// CreditCardAuthorization is the authorize action representing a card payment
// authorized through the payment gateway.
type CreditCardAuthorization struct {
	status ActionStatus
	object CreditCardObject
	result *CreditCardResult
}

// NewCreditCardAuthorization creates a card authorization snapshot.
func NewCreditCardAuthorization(
	status ActionStatus,
	object CreditCardObject,
	result *CreditCardResult,
) CreditCardAuthorization {
	return CreditCardAuthorization{
		status: status,
		object: object,
		result: result,
	}
}

// Status reports the completion state of the authorization.
func (a CreditCardAuthorization) Status() ActionStatus {
	return a.status
}

// Purpose reports PurposeCreditCard.
func (a CreditCardAuthorization) Purpose() Purpose {
	return PurposeCreditCard
}

// Object returns the request parameters of the authorization.
func (a CreditCardAuthorization) Object() CreditCardObject {
	return a.object
}

// Result returns the gateway's response, or nil if the downstream call never
// returned data.
func (a CreditCardAuthorization) Result() *CreditCardResult {
	return a.result
}
