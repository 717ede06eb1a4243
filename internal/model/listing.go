package model

import "time"

type ListingStatus string

const (
	ListingPending  ListingStatus = "pending"
	ListingActive   ListingStatus = "active"
	ListingPaused   ListingStatus = "paused"
	ListingRejected ListingStatus = "rejected"
)

type Category string

const (
	CategoryFurniture   Category = "furniture"
	CategoryAppliances  Category = "appliances"
	CategoryElectronics Category = "electronics"
	CategoryVehicles    Category = "vehicles"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFurniture, CategoryAppliances, CategoryElectronics, CategoryVehicles, CategoryOther:
		return true
	}
	return false
}

// ModerationThreshold is the monthly price at and above which a new
// listing requires admin approval before going live.
const ModerationThreshold = 10000

type Listing struct {
	ID            int64         `json:"-" db:"id"`
	ListingUid    string        `json:"listingUid" db:"listing_uid"`
	SellerID      int64         `json:"sellerId" db:"seller_id"`
	Title         string        `json:"title" db:"title"`
	Description   string        `json:"description" db:"description"`
	Category      Category      `json:"category" db:"category"`
	PricePerMonth float64       `json:"pricePerMonth" db:"price_per_month"`
	TenureOptions IntList       `json:"tenureOptions" db:"tenure_options"`
	TenurePricing PriceTiers    `json:"tenurePricing" db:"tenure_pricing"`
	Tags          StringList    `json:"tags" db:"tags"`
	DeliveryZones StringList    `json:"deliveryZones" db:"delivery_zones"`
	Images        StringList    `json:"images" db:"images"`
	Status        ListingStatus `json:"status" db:"status"`
	Views         int64         `json:"views" db:"views"`
	Rents         int64         `json:"rents" db:"rents"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

type CreateListingRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Category      Category `json:"category" validate:"required"`
	PricePerMonth float64  `json:"pricePerMonth" validate:"required"`
	TenureOptions []int    `json:"tenureOptions"`
	Tags          []string `json:"tags"`
	DeliveryZones []string `json:"deliveryZones"`
	Images        []string `json:"images"`
}

type UpdateListingRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	PricePerMonth *float64 `json:"pricePerMonth"`
	Tags          []string `json:"tags"`
	DeliveryZones []string `json:"deliveryZones"`
}

type ListingFilter struct {
	Category string
	Zone     string
	Search   string
	MinPrice float64
	MaxPrice float64
	Status   ListingStatus
	SellerID int64
	Page     int
	Size     int
}

type ListListings struct {
	Paging `json:",inline"`
	Items  []Listing `json:"items"`
}
