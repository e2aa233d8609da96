package model

import (
	"time"

	"github.com/google/uuid"
)

// Role tiers, ordered viewer < admin < super_admin. Policy checks are
// ANY-of over these sets rather than threshold comparisons, so the
// router declares exactly which roles an endpoint accepts.
const (
	RoleViewer     = "viewer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Central policy sets used by the router. Keeping them here avoids the
// per-route string drift the handlers would otherwise accumulate.
var (
	AnyRole        = []string{RoleViewer, RoleAdmin, RoleSuperAdmin}
	AdminOrAbove   = []string{RoleAdmin, RoleSuperAdmin}
	SuperAdminOnly = []string{RoleSuperAdmin}
)

// ValidRole reports whether r is one of the three known tiers.
func ValidRole(r string) bool {
	return r == RoleViewer || r == RoleAdmin || r == RoleSuperAdmin
}

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'viewer'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
