package dto

import (
	"quizku_backend/internals/features/developers/model"
	"quizku_backend/internals/id"
)

// ============================
// Request DTO
// ============================
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================
// Response DTO
// ============================
type DeveloperResponse struct {
	ID       id.ID  `json:"id"`
	Username string `json:"username"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ApiKeyResponse: satu-satunya tempat plaintext key muncul.
type ApiKeyResponse struct {
	ID     id.ID  `json:"id"`
	ApiKey string `json:"api_key"`
}

// ============================
// Converter
// ============================
func ToDeveloperResponse(m model.DeveloperModel) DeveloperResponse {
	return DeveloperResponse{
		ID:       m.ID,
		Username: m.Username,
	}
}
