package model

import "time"

type User struct {
	ID           int64     `json:"-" db:"id"`
	UserUid      string    `json:"userUid" db:"user_uid"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Seller struct {
	UserID        int64   `json:"sellerId" db:"user_id"`
	ShopName      string  `json:"shopName" db:"shop_name"`
	TotalListings int64   `json:"totalListings" db:"total_listings"`
	TotalRentals  int64   `json:"totalRentals" db:"total_rentals"`
	TotalEarnings float64 `json:"totalEarnings" db:"total_earnings"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=renter seller"`
	ShopName string `json:"shopName"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type ListUsers struct {
	Paging `json:",inline"`
	Items  []User `json:"items"`
}

type StudentVerificationStatus string

const (
	StudentPending  StudentVerificationStatus = "pending"
	StudentApproved StudentVerificationStatus = "approved"
	StudentRejected StudentVerificationStatus = "rejected"
)

type StudentVerification struct {
	ID          int64                     `json:"id" db:"id"`
	UserID      int64                     `json:"userId" db:"user_id"`
	Institution string                    `json:"institution" db:"institution"`
	DocumentURL string                    `json:"documentUrl" db:"document_url"`
	Status      StudentVerificationStatus `json:"status" db:"status"`
	ReviewedAt  *time.Time                `json:"reviewedAt,omitempty" db:"reviewed_at"`
	CreatedAt   time.Time                 `json:"createdAt" db:"created_at"`
}

type StudentVerificationRequest struct {
	Institution string `json:"institution" validate:"required"`
	DocumentURL string `json:"documentUrl" validate:"required,url"`
}
