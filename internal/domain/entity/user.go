// Package entity contains the core business objects of the project.
package entity

// Role classifies an end-client account. It is stored but not yet consulted
// by any access-control check.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// User is an end-client identity. It has no relationship to the vendor
// hierarchy; clients and vendors authenticate through separate tables.
type User struct {
	ID             int64  // Primary identifier.
	Email          string // Unique login email.
	FullName       string // Optional display name.
	HashedPassword string // bcrypt hash, never exposed through the API.
	Disabled       bool   // Disabled users cannot access authenticated routes.
	Role           Role
}
