package order

// ProgramMembership is the membership reference copied onto the order when
// the purchasing agent is a program member.
type ProgramMembership struct {
	TypeOf           string
	ProgramName      string
	MembershipNumber string
}

// Customer is the purchasing customer as recorded on the order: the agent's
// identity merged with the contact details supplied during the transaction.
type Customer struct {
	ID         string
	TypeOf     string
	Name       string
	URL        string
	Email      string
	Telephone  string
	FamilyName string
	GivenName  string

	// MemberOf is set only when the agent carries a membership reference.
	MemberOf *ProgramMembership
}

// Seller is the ticketing seller the order was placed against.
type Seller struct {
	TypeOf string
	ID     string
	Name   string
	URL    string
}
