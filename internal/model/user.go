package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// Статусы аккаунта
const (
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

// Роли пользователей
const (
	UserRolePlayer = "player"
	UserRoleAdmin  = "admin"
)

type User struct {
	ID      int
	Name    string
	Login   string
	Role    string
	Status  string
	Balance float64
}

type UserClaims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
