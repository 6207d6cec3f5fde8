package dto

import (
	"careerhub/internal/domain/user"
)

type AuthResponse struct {
	User         user.User `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ListResponse is the shared envelope for paginated collections; Items keys
// vary per endpoint so handlers build it with the concrete field name.
type ListResponse struct {
	Items      any `json:"items"`
	Pagination any `json:"pagination"`
}
