package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBusiness Role = "business"
	RoleCustomer Role = "customer"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"
)

type User struct {
	ID        uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"size:255;not null"`
	Email     string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Role      Role       `json:"role" gorm:"type:enum('admin','business','customer');default:'customer'"`
	Status    UserStatus `json:"status" gorm:"type:enum('active','banned');default:'active'"`
	Latitude  *string    `json:"latitude" gorm:"type:decimal(10,7)"`
	Longitude *string    `json:"longitude" gorm:"type:decimal(10,7)"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

func (u *User) HasRole(r Role) bool {
	return u != nil && u.Role == r
}

// PublicUser is the shape returned by moderation endpoints. Coordinates are
// stored as decimal strings and exposed as numbers.
type PublicUser struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Public reshapes u for moderation responses. An unparseable coordinate is
// returned as null together with the parse error.
func (u *User) Public() (PublicUser, error) {
	lat, latErr := parseCoordinate(u.Latitude)
	lng, lngErr := parseCoordinate(u.Longitude)
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		Latitude:  lat,
		Longitude: lng,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, errors.Join(latErr, lngErr)
}

func parseCoordinate(s *string) (*float64, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("parse coordinate %q: %w", *s, err)
	}
	f := d.InexactFloat64()
	return &f, nil
}
