package dto

import (
	"seatpos/infras/backend"
	"seatpos/infras/credstore"
	accountModel "seatpos/internal/domains/account/model"
	"seatpos/shared/timezone"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,mail"`
	Password string `json:"password" validate:"required,nowhitespace"`
}

// Normalize trims the email. The password is sent as typed.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (r *LoginResponse) ToCredentials() credstore.Credentials {
	return credstore.Credentials{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		SavedAt:      timezone.Now(),
	}
}

func (r *LoginResponse) FromTokenPair(pair backend.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
}

type SessionResponse struct {
	Ready    bool                   `json:"ready"`
	SignedIn bool                   `json:"signedIn"`
	Profile  *accountModel.Employee `json:"profile"`
	BranchID string                 `json:"branchId,omitempty"`
}
