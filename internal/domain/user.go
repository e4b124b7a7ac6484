package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Email         string `json:"email"`
	IsGlobalAdmin bool   `json:"is_global_admin"`
}

type Claims struct {
	UserID    string
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}
