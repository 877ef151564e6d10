package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	MobileNumber string
	PasswordHash string
	Role         UserRole
	Address      string
	ZipCode      string
	CreatedAt    time.Time
}
