package model

import "time"

type RentalStatus string

const (
	RentalBooked     RentalStatus = "booked"
	RentalActive     RentalStatus = "active"
	RentalEndingSoon RentalStatus = "ending-soon"
	RentalReturned   RentalStatus = "returned"
	RentalCancelled  RentalStatus = "cancelled"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalBooked, RentalActive, RentalEndingSoon, RentalReturned, RentalCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the rental's lifecycle.
func (s RentalStatus) Terminal() bool {
	return s == RentalReturned || s == RentalCancelled
}

type PaymentMethod string

const (
	MethodEsewa  PaymentMethod = "esewa"
	MethodKhalti PaymentMethod = "khalti"
	MethodCash   PaymentMethod = "cash"
	MethodBank   PaymentMethod = "bank"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodEsewa, MethodKhalti, MethodCash, MethodBank:
		return true
	}
	return false
}

type Rental struct {
	ID            int64         `json:"-" db:"id"`
	RentalUid     string        `json:"rentalUid" db:"rental_uid"`
	UserID        int64         `json:"userId" db:"user_id"`
	ListingID     *int64        `json:"-" db:"listing_id"`
	ListingUid    string        `json:"listingUid" db:"listing_uid"`
	SellerID      int64         `json:"sellerId" db:"seller_id"`
	Status        RentalStatus  `json:"status" db:"status"`
	Tenure        int           `json:"tenure" db:"tenure"`
	MonthlyRent   float64       `json:"monthlyRent" db:"monthly_rent"`
	TotalAmount   float64       `json:"totalAmount" db:"total_amount"`
	StartDate     time.Time     `json:"startDate" db:"start_date"`
	EndDate       time.Time     `json:"endDate" db:"end_date"`
	FullName      string        `json:"fullName" db:"full_name"`
	Phone         string        `json:"phone" db:"phone"`
	Street        string        `json:"street" db:"street"`
	City          string        `json:"city" db:"city"`
	Ward          string        `json:"ward" db:"ward"`
	PostalCode    string        `json:"postalCode" db:"postal_code"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

type DeliveryAddress struct {
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Ward       string `json:"ward"`
	PostalCode string `json:"postalCode"`
}

type CreateRentalRequest struct {
	ListingUid    string          `json:"productId" validate:"required"`
	Tenure        int             `json:"tenure" validate:"required"`
	Address       DeliveryAddress `json:"address" validate:"required"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required"`
}

type ListRentals struct {
	Paging `json:",inline"`
	Items  []Rental `json:"items"`
}
