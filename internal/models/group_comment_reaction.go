package models

type GroupCommentReaction struct {
	BaseModel

	GroupCommentID uint   `gorm:"not null;uniqueIndex:idx_group_reaction_triple"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_group_reaction_triple"`
	Emoji          string `gorm:"not null;size:32;uniqueIndex:idx_group_reaction_triple"`

	// Relationships
	GroupComment GroupComment `gorm:"foreignKey:GroupCommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User         User         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
