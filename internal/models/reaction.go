package models

type Reaction struct {
	BaseModel

	CommentID uint   `gorm:"not null;uniqueIndex:idx_reaction_triple"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_reaction_triple"`
	Emoji     string `gorm:"not null;size:32;uniqueIndex:idx_reaction_triple"`

	// Relationships
	Comment Comment `gorm:"foreignKey:CommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
