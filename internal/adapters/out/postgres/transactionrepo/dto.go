// Package transactionrepo provides data transfer objects and mapping functions
// for place-order transaction persistence. This package implements the
// repository pattern for the transaction domain aggregate, handling the
// conversion between domain entities and database representations.
package transactionrepo

import (
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/transaction"
	"ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

// PlaceOrderDTO represents the database structure for persisting place-order
// transaction aggregates. The heterogeneous authorize action list is stored as
// a jsonb document: actions are only ever read back as a whole list, and the
// polymorphic payloads do not warrant one relational table per purpose.
type PlaceOrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status  int       `gorm:"not null;index:idx_transactions_expiry,priority:1"`
	Expires time.Time `gorm:"not null;index:idx_transactions_expiry,priority:2"`

	Agent  AgentDTO  `gorm:"embedded;embeddedPrefix:agent_"`
	Seller SellerDTO `gorm:"embedded;embeddedPrefix:seller_"`

	// Contact columns are empty until the customer supplies contact details.
	// A non-empty telephone marks the contact as present.
	ContactFamilyName string `gorm:"type:varchar(64)"`
	ContactGivenName  string `gorm:"type:varchar(64)"`
	ContactTelephone  string `gorm:"type:varchar(32)"`
	ContactEmail      string `gorm:"type:varchar(255)"`

	AuthorizeActions []AuthorizeActionDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for transaction entities.
// Overrides GORM's default naming convention to use "place_order_transactions".
func (PlaceOrderDTO) TableName() string {
	return "place_order_transactions"
}

// AgentDTO represents the embedded purchasing agent columns.
// The membership columns are nullable; they are set only for program members.
type AgentDTO struct {
	ID               string  `gorm:"type:varchar(64)"`
	TypeOf           string  `gorm:"type:varchar(64)"`
	MemberTypeOf     *string `gorm:"type:varchar(64)"`
	MemberProgram    *string `gorm:"type:varchar(255)"`
	MembershipNumber *string `gorm:"type:varchar(64)"`
}

// SellerDTO represents the embedded seller columns.
type SellerDTO struct {
	TypeOf string `gorm:"type:varchar(64)"`
	ID     string `gorm:"type:varchar(64)"`
	Name   string `gorm:"type:varchar(255)"`
	URL    string `gorm:"type:varchar(255)"`
}

// AuthorizeActionDTO is the json shape of one authorize action. The purpose
// field discriminates which payload pointer is populated.
type AuthorizeActionDTO struct {
	Purpose string `json:"purpose"`
	Status  int    `json:"status"`

	SeatReservation *SeatReservationActionDTO `json:"seatReservation,omitempty"`
	CreditCard      *CreditCardActionDTO      `json:"creditCard,omitempty"`
	Voucher         *VoucherActionDTO         `json:"voucher,omitempty"`
	Award           *AwardActionDTO           `json:"award,omitempty"`
}

// MultilingualStringDTO is the json shape of a bilingual text value.
type MultilingualStringDTO struct {
	Ja string `json:"ja"`
	En string `json:"en"`
}

// SeatOfferDTO is the json shape of one requested seat with its quoted price.
type SeatOfferDTO struct {
	SeatSection string                `json:"seatSection"`
	SeatNumber  string                `json:"seatNumber"`
	TicketName  MultilingualStringDTO `json:"ticketName"`
	Price       int                   `json:"price"`
}

// ReservedSeatDTO is the json shape of one seat the reservation system held.
type ReservedSeatDTO struct {
	Section string `json:"section"`
	Number  string `json:"number"`
}

// SeatReservationResultDTO is the json shape of the reservation confirmation.
type SeatReservationResultDTO struct {
	Price              int               `json:"price"`
	TheaterCode        string            `json:"theaterCode"`
	ConfirmationNumber string            `json:"confirmationNumber"`
	Seats              []ReservedSeatDTO `json:"seats"`
}

// SeatReservationActionDTO is the json payload of a seat-reservation action.
type SeatReservationActionDTO struct {
	EventIdentifier string                    `json:"eventIdentifier"`
	EventName       MultilingualStringDTO     `json:"eventName"`
	VenueTypeOf     string                    `json:"venueTypeOf"`
	VenueName       MultilingualStringDTO     `json:"venueName"`
	Offers          []SeatOfferDTO            `json:"offers"`
	Result          *SeatReservationResultDTO `json:"result,omitempty"`
}

// CreditCardResultDTO is the json shape of the gateway response.
type CreditCardResultDTO struct {
	Price          int    `json:"price"`
	GatewayOrderID string `json:"gatewayOrderId"`
}

// CreditCardActionDTO is the json payload of a card authorization action.
type CreditCardActionDTO struct {
	GatewayOrderID string               `json:"gatewayOrderId"`
	Amount         int                  `json:"amount"`
	Result         *CreditCardResultDTO `json:"result,omitempty"`
}

// VoucherResultDTO is the json shape of the voucher system response.
type VoucherResultDTO struct {
	Price int `json:"price"`
}

// VoucherActionDTO is the json payload of a voucher redemption action.
type VoucherActionDTO struct {
	VoucherCodes []string          `json:"voucherCodes"`
	Result       *VoucherResultDTO `json:"result,omitempty"`
}

// AwardResultDTO is the json shape of the award system response.
type AwardResultDTO struct {
	Price  int `json:"price"`
	Points int `json:"points"`
}

// AwardActionDTO is the json payload of a loyalty-point award action.
type AwardActionDTO struct {
	Points int             `json:"points"`
	Result *AwardResultDTO `json:"result,omitempty"`
}

// fromDomain converts a transaction domain aggregate to its database
// representation.
func fromDomain(aggregate *transaction.PlaceOrder) PlaceOrderDTO {
	agent := aggregate.Agent()
	agentDTO := AgentDTO{
		ID:     agent.ID,
		TypeOf: agent.TypeOf,
	}
	if agent.MemberOf != nil {
		agentDTO.MemberTypeOf = &agent.MemberOf.TypeOf
		agentDTO.MemberProgram = &agent.MemberOf.ProgramName
		agentDTO.MembershipNumber = &agent.MemberOf.MembershipNumber
	}

	dto := PlaceOrderDTO{
		ID:      aggregate.ID().Bytes(),
		Status:  int(aggregate.Status()),
		Expires: aggregate.Expires(),
		Agent:   agentDTO,
		Seller: SellerDTO{
			TypeOf: aggregate.Seller().TypeOf,
			ID:     aggregate.Seller().ID,
			Name:   aggregate.Seller().Name,
			URL:    aggregate.Seller().URL,
		},
		AuthorizeActions: actionsFromDomain(aggregate.AuthorizeActions()),
	}

	if contact := aggregate.CustomerContact(); contact != nil {
		dto.ContactFamilyName = contact.Name().FamilyName()
		dto.ContactGivenName = contact.Name().GivenName()
		dto.ContactTelephone = contact.Telephone()
		dto.ContactEmail = contact.Email()
	}

	return dto
}

// toDomain converts a database DTO to a transaction domain aggregate.
// Reconstructs the complete aggregate including the polymorphic action list
// using RestorePlaceOrder.
func toDomain(dto PlaceOrderDTO) (*transaction.PlaceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agent := transaction.Agent{
		ID:     dto.Agent.ID,
		TypeOf: dto.Agent.TypeOf,
	}
	if dto.Agent.MembershipNumber != nil {
		membership := transaction.ProgramMembership{MembershipNumber: *dto.Agent.MembershipNumber}
		if dto.Agent.MemberTypeOf != nil {
			membership.TypeOf = *dto.Agent.MemberTypeOf
		}
		if dto.Agent.MemberProgram != nil {
			membership.ProgramName = *dto.Agent.MemberProgram
		}
		agent.MemberOf = &membership
	}

	var contact *transaction.CustomerContact
	if dto.ContactTelephone != "" {
		name, nameErr := kernel.NewPersonName(dto.ContactFamilyName, dto.ContactGivenName)
		if nameErr != nil {
			return nil, nameErr
		}

		restored, contactErr := transaction.NewCustomerContact(name, dto.ContactTelephone, dto.ContactEmail)
		if contactErr != nil {
			return nil, contactErr
		}
		contact = &restored
	}

	actions, err := actionsToDomain(dto.AuthorizeActions)
	if err != nil {
		return nil, err
	}

	return transaction.RestorePlaceOrder(
		id,
		transaction.Status(dto.Status),
		agent,
		transaction.Seller{
			TypeOf: dto.Seller.TypeOf,
			ID:     dto.Seller.ID,
			Name:   dto.Seller.Name,
			URL:    dto.Seller.URL,
		},
		contact,
		actions,
		dto.Expires,
	)
}

func actionsFromDomain(actions []transaction.AuthorizeAction) []AuthorizeActionDTO {
	dtos := make([]AuthorizeActionDTO, 0, len(actions))
	for _, action := range actions {
		dto := AuthorizeActionDTO{
			Purpose: action.Purpose().String(),
			Status:  int(action.Status()),
		}

		switch a := action.(type) {
		case transaction.SeatReservationAuthorization:
			dto.SeatReservation = seatReservationFromDomain(a)
		case transaction.CreditCardAuthorization:
			dto.CreditCard = creditCardFromDomain(a)
		case transaction.VoucherAuthorization:
			dto.Voucher = voucherFromDomain(a)
		case transaction.AwardAuthorization:
			dto.Award = awardFromDomain(a)
		}

		dtos = append(dtos, dto)
	}
	return dtos
}

func actionsToDomain(dtos []AuthorizeActionDTO) ([]transaction.AuthorizeAction, error) {
	actions := make([]transaction.AuthorizeAction, 0, len(dtos))
	for _, dto := range dtos {
		status := transaction.ActionStatus(dto.Status)

		switch {
		case dto.SeatReservation != nil:
			actions = append(actions, seatReservationToDomain(status, *dto.SeatReservation))
		case dto.CreditCard != nil:
			actions = append(actions, creditCardToDomain(status, *dto.CreditCard))
		case dto.Voucher != nil:
			actions = append(actions, voucherToDomain(status, *dto.Voucher))
		case dto.Award != nil:
			actions = append(actions, awardToDomain(status, *dto.Award))
		default:
			return nil, errs.NewValueIsInvalidError("authorizeAction.purpose " + dto.Purpose)
		}
	}
	return actions, nil
}

func seatReservationFromDomain(a transaction.SeatReservationAuthorization) *SeatReservationActionDTO {
	object := a.Object()

	offers := make([]SeatOfferDTO, 0, len(object.Offers))
	for _, offer := range object.Offers {
		offers = append(offers, SeatOfferDTO{
			SeatSection: offer.SeatSection,
			SeatNumber:  offer.SeatNumber,
			TicketName:  MultilingualStringDTO{Ja: offer.TicketName.Ja, En: offer.TicketName.En},
			Price:       offer.Price,
		})
	}

	dto := &SeatReservationActionDTO{
		EventIdentifier: object.Event.Identifier,
		EventName:       MultilingualStringDTO{Ja: object.Event.Name.Ja, En: object.Event.Name.En},
		VenueTypeOf:     object.Event.Venue.TypeOf,
		VenueName:       MultilingualStringDTO{Ja: object.Event.Venue.Name.Ja, En: object.Event.Venue.Name.En},
		Offers:          offers,
	}

	if result := a.Result(); result != nil {
		seats := make([]ReservedSeatDTO, 0, len(result.Seats))
		for _, seat := range result.Seats {
			seats = append(seats, ReservedSeatDTO{Section: seat.Section, Number: seat.Number})
		}

		dto.Result = &SeatReservationResultDTO{
			Price:              result.Price,
			TheaterCode:        result.TheaterCode,
			ConfirmationNumber: result.ConfirmationNumber,
			Seats:              seats,
		}
	}

	return dto
}

func seatReservationToDomain(
	status transaction.ActionStatus,
	dto SeatReservationActionDTO,
) transaction.SeatReservationAuthorization {
	offers := make([]transaction.SeatOffer, 0, len(dto.Offers))
	for _, offer := range dto.Offers {
		offers = append(offers, transaction.SeatOffer{
			SeatSection: offer.SeatSection,
			SeatNumber:  offer.SeatNumber,
			TicketName:  kernel.NewMultilingualString(offer.TicketName.Ja, offer.TicketName.En),
			Price:       offer.Price,
		})
	}

	var result *transaction.SeatReservationResult
	if dto.Result != nil {
		seats := make([]transaction.ReservedSeat, 0, len(dto.Result.Seats))
		for _, seat := range dto.Result.Seats {
			seats = append(seats, transaction.ReservedSeat{Section: seat.Section, Number: seat.Number})
		}

		result = &transaction.SeatReservationResult{
			Price:              dto.Result.Price,
			TheaterCode:        dto.Result.TheaterCode,
			ConfirmationNumber: dto.Result.ConfirmationNumber,
			Seats:              seats,
		}
	}

	return transaction.NewSeatReservationAuthorization(status, transaction.SeatReservationObject{
		Event: transaction.ScreeningEvent{
			Identifier: dto.EventIdentifier,
			Name:       kernel.NewMultilingualString(dto.EventName.Ja, dto.EventName.En),
			Venue: transaction.Venue{
				TypeOf: dto.VenueTypeOf,
				Name:   kernel.NewMultilingualString(dto.VenueName.Ja, dto.VenueName.En),
			},
		},
		Offers: offers,
	}, result)
}

func creditCardFromDomain(a transaction.CreditCardAuthorization) *CreditCardActionDTO {
	dto := &CreditCardActionDTO{
		GatewayOrderID: a.Object().GatewayOrderID,
		Amount:         a.Object().Amount,
	}

	if result := a.Result(); result != nil {
		dto.Result = &CreditCardResultDTO{
			Price:          result.Price,
			GatewayOrderID: result.GatewayOrderID,
		}
	}

	return dto
}

func creditCardToDomain(status transaction.ActionStatus, dto CreditCardActionDTO) transaction.CreditCardAuthorization {
	var result *transaction.CreditCardResult
	if dto.Result != nil {
		result = &transaction.CreditCardResult{
			Price:          dto.Result.Price,
			GatewayOrderID: dto.Result.GatewayOrderID,
		}
	}

	return transaction.NewCreditCardAuthorization(status, transaction.CreditCardObject{
		GatewayOrderID: dto.GatewayOrderID,
		Amount:         dto.Amount,
	}, result)
}

func voucherFromDomain(a transaction.VoucherAuthorization) *VoucherActionDTO {
	dto := &VoucherActionDTO{
		VoucherCodes: a.Object().VoucherCodes,
	}

	if result := a.Result(); result != nil {
		dto.Result = &VoucherResultDTO{Price: result.Price}
	}

	return dto
}

func voucherToDomain(status transaction.ActionStatus, dto VoucherActionDTO) transaction.VoucherAuthorization {
	var result *transaction.VoucherResult
	if dto.Result != nil {
		result = &transaction.VoucherResult{Price: dto.Result.Price}
	}

	return transaction.NewVoucherAuthorization(status, transaction.VoucherObject{
		VoucherCodes: dto.VoucherCodes,
	}, result)
}

func awardFromDomain(a transaction.AwardAuthorization) *AwardActionDTO {
	dto := &AwardActionDTO{
		Points: a.Object().Points,
	}

	if result := a.Result(); result != nil {
		dto.Result = &AwardResultDTO{Price: result.Price, Points: result.Points}
	}

	return dto
}

func awardToDomain(status transaction.ActionStatus, dto AwardActionDTO) transaction.AwardAuthorization {
	var result *transaction.AwardResult
	if dto.Result != nil {
		result = &transaction.AwardResult{Price: dto.Result.Price, Points: dto.Result.Points}
	}

	return transaction.NewAwardAuthorization(status, transaction.AwardObject{Points: dto.Points}, result)
}
