package models

// Comment is attached to a card by owner id plus cell coordinates, not by a
// foreign key to the card row, so comments survive card overwrites and the
// coordinates are never bounds-checked against the live grid.
type Comment struct {
	BaseModel

	AuthorID    uint   `gorm:"not null;index"`
	CardOwnerID uint   `gorm:"not null;index"`
	// "row" is reserved in Postgres, so the coordinate columns carry a prefix.
	Row int `gorm:"column:cell_row;not null"`
	Col int `gorm:"column:cell_col;not null"`
	Text        string `gorm:"not null"`
	Private     bool   `gorm:"not null;default:false"`

	// Relationships
	Author    User       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CardOwner User       `gorm:"foreignKey:CardOwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reactions []Reaction `gorm:"foreignKey:CommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
