package model

import "time"

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "initiated"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID         int64         `json:"-" db:"id"`
	PaymentUid string        `json:"paymentUid" db:"payment_uid"`
	RentalID   int64         `json:"-" db:"rental_id"`
	UserID     int64         `json:"userId" db:"user_id"`
	Amount     float64       `json:"amount" db:"amount"`
	Method     PaymentMethod `json:"method" db:"method"`
	Status     PaymentStatus `json:"status" db:"status"`
	GatewayRef string        `json:"gatewayRef,omitempty" db:"gateway_ref"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}

type Message struct {
	ID          int64     `json:"id" db:"id"`
	ListingID   int64     `json:"-" db:"listing_id"`
	ListingUid  string    `json:"listingUid" db:"listing_uid"`
	SenderID    int64     `json:"senderId" db:"sender_id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
	Body        string    `json:"body" db:"body"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type SendMessageRequest struct {
	Body        string `json:"body" validate:"required"`
	RecipientID int64  `json:"recipientId"`
}
