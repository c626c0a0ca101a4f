package transaction

// VoucherObject is the request half of a discount voucher authorization.
// A single authorization may redeem several physical voucher cards at once.
type VoucherObject struct {
	// VoucherCodes are the purchase numbers of the redeemed vouchers, in the
	// order the customer presented them.
	VoucherCodes []string
}

// VoucherResult is the response half of a voucher authorization.
type VoucherResult struct {
	// Price is the total amount the vouchers knocked off the order.
	Price int
}

// VoucherAuthorization is the authorize action representing pre-paid movie
// voucher redemption reducing the order price.
type VoucherAuthorization struct {
	status ActionStatus
	object VoucherObject
	result *VoucherResult
}

// NewVoucherAuthorization creates a voucher authorization snapshot.
func NewVoucherAuthorization(
	status ActionStatus,
	object VoucherObject,
	result *VoucherResult,
) VoucherAuthorization {
	return VoucherAuthorization{
		status: status,
		object: object,
		result: result,
	}
}

// Status reports the completion state of the authorization.
func (a VoucherAuthorization) Status() ActionStatus {
	return a.status
}

// Purpose reports PurposeVoucher.
func (a VoucherAuthorization) Purpose() Purpose {
	return PurposeVoucher
}

// Object returns the request parameters of the authorization.
func (a VoucherAuthorization) Object() VoucherObject {
	return a.object
}

// Result returns the voucher system's response, or nil if the downstream call
// never returned data.
func (a VoucherAuthorization) Result() *VoucherResult {
	return a.result
}
