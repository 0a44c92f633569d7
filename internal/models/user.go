package models

type User struct {
	BaseModel

	Name         string  `gorm:"not null"`
	Handle       *string `gorm:"uniqueIndex"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	IsAdmin      bool    `gorm:"not null;default:false"`

	// Relationships
	Card             *Card             `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	SentRequests     []Friendship      `gorm:"foreignKey:RequesterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReceivedRequests []Friendship      `gorm:"foreignKey:AddresseeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments         []Comment         `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reactions        []Reaction        `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	GroupMemberships []GroupMembership `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
