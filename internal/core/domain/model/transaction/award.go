package transaction

// AwardObject is the request half of a loyalty-point award authorization.
type AwardObject struct {
	// Points is the number of loyalty points to grant on order completion.
	Points int
}

// AwardResult is the response half of a loyalty-point award authorization.
type AwardResult struct {
	// Price is the monetary value the award contributes to the order total.
	// Always zero today; awards ride alongside the order rather than in it.
	Price int

	// Points is the number of points actually granted.
	Points int
}

// AwardAuthorization is the authorize action representing a loyalty-point
// award attached to the transaction as a purchase incentive. Awards are
// classified with the other actions but deliberately contribute nothing to
// the order's price or payment methods.
type AwardAuthorization struct {
	status ActionStatus
	object AwardObject
	result *AwardResult
}

// NewAwardAuthorization creates a loyalty-point award authorization snapshot.
func NewAwardAuthorization(status ActionStatus, object AwardObject, result *AwardResult) AwardAuthorization {
	return AwardAuthorization{
		status: status,
		object: object,
		result: result,
	}
}

// Status reports the completion state of the authorization.
func (a AwardAuthorization) Status() ActionStatus {
	return a.status
}

// Purpose reports PurposeAward.
func (a AwardAuthorization) Purpose() Purpose {
	return PurposeAward
}

// Object returns the request parameters of the authorization.
func (a AwardAuthorization) Object() AwardObject {
	return a.object
}

// Result returns the award system's response, or nil if the downstream call
// never returned data.
func (a AwardAuthorization) Result() *AwardResult {
	return a.result
}
