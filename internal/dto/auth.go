package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest defines the data needed to open an account.
type RegisterRequest struct {
	Handle         string `json:"handle" binding:"required,handle"`
	Password       string `json:"password" binding:"required,min=6,max=72"`
	ReferrerHandle string `json:"referrerHandle" binding:"omitempty,handle"` // Optional
}

// LoginRequest represents the credentials for logging in.
type LoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
