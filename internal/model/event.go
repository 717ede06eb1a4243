package model

// SellerEvent is published to Kafka on listing/rental lifecycle changes
// and folded into seller aggregate counters by the stats consumer.
type SellerEvent struct {
	Type     string  `json:"type"`
	SellerID int64   `json:"sellerId"`
	Amount   float64 `json:"amount,omitempty"`
}

const (
	EventListingCreated = "listing.created"
	EventRentalCreated  = "rental.created"
	EventRentalReturned = "rental.returned"
)
