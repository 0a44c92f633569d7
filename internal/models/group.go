package models

type Group struct {
	BaseModel

	Name      string `gorm:"not null"`
	CreatorID uint   `gorm:"not null;index"`

	// Relationships
	Creator     User              `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Memberships []GroupMembership `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments    []GroupComment    `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
