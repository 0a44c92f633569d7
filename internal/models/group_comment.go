package models

type GroupComment struct {
	BaseModel

	GroupID  uint   `gorm:"not null;index"`
	AuthorID uint   `gorm:"not null;index"`
	Text     string `gorm:"not null"`
	Private  bool   `gorm:"not null;default:false"`

	// Relationships
	Group     Group                  `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author    User                   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reactions []GroupCommentReaction `gorm:"foreignKey:GroupCommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
