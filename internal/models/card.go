package models

import "gorm.io/datatypes"

type Card struct {
	BaseModel

	OwnerID    uint           `gorm:"not null;uniqueIndex"` // At most one card per user
	Size       int            `gorm:"not null"`
	Grid       datatypes.JSON `gorm:"not null"` // N x N cells: {"text": ..., "category": ...}
	Completion datatypes.JSON `gorm:"not null"` // N x N booleans

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
