package model

import "time"

// Role identifiers as seeded in the `roles` table.
const (
	RoleManager  = 1
	RoleSysadmin = 2
	RoleCustomer = 3
)

// User represents an application user as stored in the `users` table.
// Passwords are bcrypt hashes; the hash never leaves the repository
// layer (handlers build separate response types without it).
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hash of the password.
//  RoleID       – foreign key into roles (1 manager, 2 sysadmin, 3 customer).
//  IsBlocked    – sysadmin-controlled block flag.
type User struct {
	ID           uint64 // users.id
	Name         string // users.name
	Email        string // users.email
	PasswordHash string // users.password
	RoleID       int    // users.role_id
	IsBlocked    bool   // users.is_blocked
}

// FAQ is a user-submitted question awaiting a manager's answer.
// Status is 'pending' until a manager attaches an answer, which
// flips it to 'answered'.
type FAQ struct {
	ID        uint64     `json:"id"`         // faq.id
	UserID    *uint64    `json:"user_id"`    // faq.user_id (nullable, guests allowed)
	Theme     string     `json:"theme"`      // faq.theme
	Question  string     `json:"question"`   // faq.question
	Answer    string     `json:"answer"`     // faq.answer
	Status    string     `json:"status"`     // faq.status: pending | answered
	CreatedAt time.Time  `json:"created_at"` // faq.created_at
	UpdatedAt *time.Time `json:"updated_at"` // faq.updated_at (nullable)
}
