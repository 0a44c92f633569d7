package models

import "time"

// BaseModel is gorm.Model without the soft-delete column. Deletions in this
// system are hard deletes (a declined friend request or removed reaction must
// not leave a tombstone occupying its unique index), so DeletedAt is omitted
// everywhere.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
