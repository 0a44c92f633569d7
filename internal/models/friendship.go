package models

const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
)

// Friendship links an unordered pair of users. The pair is stored as two
// explicit columns with no canonical ordering, so lookups always check both
// directions; the composite index only rejects same-direction duplicates.
type Friendship struct {
	BaseModel

	RequesterID uint   `gorm:"not null;uniqueIndex:idx_friend_pair"`
	AddresseeID uint   `gorm:"not null;uniqueIndex:idx_friend_pair"`
	Status      string `gorm:"not null;default:'pending'"` // "pending", "accepted"

	// Relationships
	Requester User `gorm:"foreignKey:RequesterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Addressee User `gorm:"foreignKey:AddresseeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
