// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ticketing/internal/core/domain/model/kernel"
	"ticketing/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The three inquiry key parts are flattened into indexed columns so customer
// lookups hit a composite index; the nested line item sequences are stored as
// jsonb documents since they are only ever read back whole.
type OrderDTO struct {
	OrderNumber        string `gorm:"type:varchar(64);primaryKey"`
	ConfirmationNumber string `gorm:"type:varchar(32);not null;index:idx_orders_inquiry,priority:2"`
	TheaterCode        string `gorm:"type:varchar(8);not null;index:idx_orders_inquiry,priority:1"`
	Telephone          string `gorm:"type:varchar(32);not null;index:idx_orders_inquiry,priority:3"`

	Seller   SellerDTO   `gorm:"embedded;embeddedPrefix:seller_"`
	Customer CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`

	Price         int    `gorm:"not null"`
	PriceCurrency string `gorm:"type:varchar(3);not null"`

	PaymentMethods []PaymentMethodDTO `gorm:"type:jsonb;serializer:json"`
	Discounts      []DiscountDTO      `gorm:"type:jsonb;serializer:json"`
	AcceptedOffers []AcceptedOfferDTO `gorm:"type:jsonb;serializer:json"`

	URL       string `gorm:"not null"`
	Status    int    `gorm:"not null"`
	OrderDate time.Time
	IsGift    bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// SellerDTO represents the embedded seller columns within the order table.
type SellerDTO struct {
	TypeOf string `gorm:"type:varchar(64)"`
	ID     string `gorm:"type:varchar(64)"`
	Name   string `gorm:"type:varchar(255)"`
	URL    string `gorm:"type:varchar(255)"`
}

// CustomerDTO represents the embedded customer columns within the order table.
// The membership columns are nullable; they are set only for program members.
type CustomerDTO struct {
	ID               string  `gorm:"type:varchar(64)"`
	TypeOf           string  `gorm:"type:varchar(64)"`
	Name             string  `gorm:"type:varchar(255)"`
	URL              string  `gorm:"type:varchar(255)"`
	Email            string  `gorm:"type:varchar(255)"`
	Telephone        string  `gorm:"type:varchar(32)"`
	FamilyName       string  `gorm:"type:varchar(64)"`
	GivenName        string  `gorm:"type:varchar(64)"`
	MemberTypeOf     *string `gorm:"type:varchar(64)"`
	MemberProgram    *string `gorm:"type:varchar(255)"`
	MembershipNumber *string `gorm:"type:varchar(64)"`
}

// MultilingualStringDTO is the json shape of a bilingual text value.
type MultilingualStringDTO struct {
	Ja string `json:"ja"`
	En string `json:"en"`
}

// PaymentMethodDTO is the json shape of one payment method line.
type PaymentMethodDTO struct {
	Name     string `json:"name"`
	Method   string `json:"paymentMethod"`
	MethodID string `json:"paymentMethodId"`
}

// DiscountDTO is the json shape of one discount line.
type DiscountDTO struct {
	Name     string `json:"name"`
	Amount   int    `json:"discount"`
	Code     string `json:"discountCode"`
	Currency string `json:"discountCurrency"`
}

// ReservationHolderDTO is the json shape of who a reservation is held under.
type ReservationHolderDTO struct {
	TypeOf string                `json:"typeOf"`
	Name   MultilingualStringDTO `json:"name"`
}

// ReservedTicketDTO is the json shape of the ticket half of a reservation.
type ReservedTicketDTO struct {
	SeatSection string                `json:"seatSection"`
	SeatNumber  string                `json:"seatNumber"`
	TicketName  MultilingualStringDTO `json:"ticketName"`
	Price       int                   `json:"price"`
	UnderName   ReservationHolderDTO  `json:"underName"`
}

// EventReservationDTO is the json shape of one confirmed seat reservation.
type EventReservationDTO struct {
	TypeOf            string                `json:"typeOf"`
	ReservationNumber string                `json:"reservationNumber"`
	ReservationStatus string                `json:"reservationStatus"`
	UnderName         ReservationHolderDTO  `json:"underName"`
	ReservedTicket    ReservedTicketDTO     `json:"reservedTicket"`
	EventIdentifier   string                `json:"eventIdentifier"`
	EventName         MultilingualStringDTO `json:"eventName"`
	Price             int                   `json:"price"`
	PriceCurrency     string                `json:"priceCurrency"`
}

// AcceptedOfferDTO is the json shape of one purchased line item.
type AcceptedOfferDTO struct {
	ItemOffered   EventReservationDTO `json:"itemOffered"`
	Price         int                 `json:"price"`
	PriceCurrency string              `json:"priceCurrency"`
	SellerTypeOf  string              `json:"sellerTypeOf"`
	SellerName    string              `json:"sellerName"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	key := aggregate.InquiryKey()
	customer := aggregate.Customer()

	customerDTO := CustomerDTO{
		ID:         customer.ID,
		TypeOf:     customer.TypeOf,
		Name:       customer.Name,
		URL:        customer.URL,
		Email:      customer.Email,
		Telephone:  customer.Telephone,
		FamilyName: customer.FamilyName,
		GivenName:  customer.GivenName,
	}
	if customer.MemberOf != nil {
		customerDTO.MemberTypeOf = &customer.MemberOf.TypeOf
		customerDTO.MemberProgram = &customer.MemberOf.ProgramName
		customerDTO.MembershipNumber = &customer.MemberOf.MembershipNumber
	}

	return OrderDTO{
		OrderNumber:        aggregate.OrderNumber(),
		ConfirmationNumber: key.ConfirmationNumber(),
		TheaterCode:        key.TheaterCode(),
		Telephone:          key.Telephone(),
		Seller: SellerDTO{
			TypeOf: aggregate.Seller().TypeOf,
			ID:     aggregate.Seller().ID,
			Name:   aggregate.Seller().Name,
			URL:    aggregate.Seller().URL,
		},
		Customer:       customerDTO,
		Price:          aggregate.Price(),
		PriceCurrency:  aggregate.PriceCurrency().String(),
		PaymentMethods: paymentMethodsFromDomain(aggregate.PaymentMethods()),
		Discounts:      discountsFromDomain(aggregate.Discounts()),
		AcceptedOffers: acceptedOffersFromDomain(aggregate.AcceptedOffers()),
		URL:            aggregate.URL(),
		Status:         int(aggregate.Status()),
		OrderDate:      aggregate.OrderDate(),
		IsGift:         aggregate.IsGift(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, including the inquiry key, through the
// validating NewOrder constructor.
func toDomain(dto OrderDTO) (*order.Order, error) {
	key, err := order.NewInquiryKey(dto.TheaterCode, dto.ConfirmationNumber, dto.Telephone)
	if err != nil {
		return nil, err
	}

	customer := order.Customer{
		ID:         dto.Customer.ID,
		TypeOf:     dto.Customer.TypeOf,
		Name:       dto.Customer.Name,
		URL:        dto.Customer.URL,
		Email:      dto.Customer.Email,
		Telephone:  dto.Customer.Telephone,
		FamilyName: dto.Customer.FamilyName,
		GivenName:  dto.Customer.GivenName,
	}
	if dto.Customer.MembershipNumber != nil {
		membership := order.ProgramMembership{MembershipNumber: *dto.Customer.MembershipNumber}
		if dto.Customer.MemberTypeOf != nil {
			membership.TypeOf = *dto.Customer.MemberTypeOf
		}
		if dto.Customer.MemberProgram != nil {
			membership.ProgramName = *dto.Customer.MemberProgram
		}
		customer.MemberOf = &membership
	}

	return order.NewOrder(order.Params{
		Seller: order.Seller{
			TypeOf: dto.Seller.TypeOf,
			ID:     dto.Seller.ID,
			Name:   dto.Seller.Name,
			URL:    dto.Seller.URL,
		},
		Customer:           customer,
		Price:              dto.Price,
		PriceCurrency:      kernel.Currency(dto.PriceCurrency),
		PaymentMethods:     paymentMethodsToDomain(dto.PaymentMethods),
		Discounts:          discountsToDomain(dto.Discounts),
		ConfirmationNumber: dto.ConfirmationNumber,
		OrderNumber:        dto.OrderNumber,
		AcceptedOffers:     acceptedOffersToDomain(dto.AcceptedOffers),
		URL:                dto.URL,
		Status:             order.Status(dto.Status),
		OrderDate:          dto.OrderDate,
		IsGift:             dto.IsGift,
		InquiryKey:         key,
	})
}

func paymentMethodsFromDomain(methods []order.PaymentMethod) []PaymentMethodDTO {
	dtos := make([]PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		dtos = append(dtos, PaymentMethodDTO{
			Name:     m.Name(),
			Method:   m.Method(),
			MethodID: m.MethodID(),
		})
	}
	return dtos
}

func paymentMethodsToDomain(dtos []PaymentMethodDTO) []order.PaymentMethod {
	methods := make([]order.PaymentMethod, 0, len(dtos))
	for _, dto := range dtos {
		methods = append(methods, order.NewPaymentMethod(dto.Name, dto.Method, dto.MethodID))
	}
	return methods
}

func discountsFromDomain(discounts []order.Discount) []DiscountDTO {
	dtos := make([]DiscountDTO, 0, len(discounts))
	for _, d := range discounts {
		dtos = append(dtos, DiscountDTO{
			Name:     d.Name(),
			Amount:   d.Amount(),
			Code:     d.Code(),
			Currency: d.Currency().String(),
		})
	}
	return dtos
}

func discountsToDomain(dtos []DiscountDTO) []order.Discount {
	discounts := make([]order.Discount, 0, len(dtos))
	for _, dto := range dtos {
		discounts = append(discounts, order.NewDiscount(
			dto.Name, dto.Amount, dto.Code, kernel.Currency(dto.Currency)))
	}
	return discounts
}

func acceptedOffersFromDomain(offers []order.AcceptedOffer) []AcceptedOfferDTO {
	dtos := make([]AcceptedOfferDTO, 0, len(offers))
	for _, o := range offers {
		item := o.ItemOffered
		dtos = append(dtos, AcceptedOfferDTO{
			ItemOffered: EventReservationDTO{
				TypeOf:            item.TypeOf,
				ReservationNumber: item.ReservationNumber,
				ReservationStatus: string(item.ReservationStatus),
				UnderName:         holderFromDomain(item.UnderName),
				ReservedTicket: ReservedTicketDTO{
					SeatSection: item.ReservedTicket.SeatSection,
					SeatNumber:  item.ReservedTicket.SeatNumber,
					TicketName:  multilingualFromDomain(item.ReservedTicket.TicketName),
					Price:       item.ReservedTicket.Price,
					UnderName:   holderFromDomain(item.ReservedTicket.UnderName),
				},
				EventIdentifier: item.ReservationFor.Identifier,
				EventName:       multilingualFromDomain(item.ReservationFor.Name),
				Price:           item.Price,
				PriceCurrency:   item.PriceCurrency.String(),
			},
			Price:         o.Price,
			PriceCurrency: o.PriceCurrency.String(),
			SellerTypeOf:  o.Seller.TypeOf,
			SellerName:    o.Seller.Name,
		})
	}
	return dtos
}

func acceptedOffersToDomain(dtos []AcceptedOfferDTO) []order.AcceptedOffer {
	offers := make([]order.AcceptedOffer, 0, len(dtos))
	for _, dto := range dtos {
		item := dto.ItemOffered
		offers = append(offers, order.AcceptedOffer{
			ItemOffered: order.EventReservation{
				TypeOf:            item.TypeOf,
				ReservationNumber: item.ReservationNumber,
				ReservationStatus: order.ReservationStatus(item.ReservationStatus),
				UnderName:         holderToDomain(item.UnderName),
				ReservedTicket: order.ReservedTicket{
					SeatSection: item.ReservedTicket.SeatSection,
					SeatNumber:  item.ReservedTicket.SeatNumber,
					TicketName:  multilingualToDomain(item.ReservedTicket.TicketName),
					Price:       item.ReservedTicket.Price,
					UnderName:   holderToDomain(item.ReservedTicket.UnderName),
				},
				ReservationFor: order.EventSummary{
					Identifier: item.EventIdentifier,
					Name:       multilingualToDomain(item.EventName),
				},
				Price:         item.Price,
				PriceCurrency: kernel.Currency(item.PriceCurrency),
			},
			Price:         dto.Price,
			PriceCurrency: kernel.Currency(dto.PriceCurrency),
			Seller: order.OfferSeller{
				TypeOf: dto.SellerTypeOf,
				Name:   dto.SellerName,
			},
		})
	}
	return offers
}

func holderFromDomain(holder order.ReservationHolder) ReservationHolderDTO {
	return ReservationHolderDTO{
		TypeOf: holder.TypeOf,
		Name:   multilingualFromDomain(holder.Name),
	}
}

func holderToDomain(dto ReservationHolderDTO) order.ReservationHolder {
	return order.ReservationHolder{
		TypeOf: dto.TypeOf,
		Name:   multilingualToDomain(dto.Name),
	}
}

func multilingualFromDomain(value kernel.MultilingualString) MultilingualStringDTO {
	return MultilingualStringDTO{Ja: value.Ja, En: value.En}
}

func multilingualToDomain(dto MultilingualStringDTO) kernel.MultilingualString {
	return kernel.NewMultilingualString(dto.Ja, dto.En)
}
