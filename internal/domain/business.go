package domain

import "time"

type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "pending"
	BusinessStatusActive    BusinessStatus = "active"
	BusinessStatusSuspended BusinessStatus = "suspended"
)

type Business struct {
	ID        uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID   uint64         `json:"ownerId" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Status    BusinessStatus `json:"status" gorm:"type:enum('pending','active','suspended');default:'pending'"`
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Business) TableName() string { return "businesses" }
