package models

const (
	GroupRoleAdmin  = "admin"
	GroupRoleMember = "member"

	MembershipStatusPending  = "pending"
	MembershipStatusAccepted = "accepted"
)

type GroupMembership struct {
	BaseModel

	GroupID uint   `gorm:"not null;uniqueIndex:idx_group_user"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_group_user"`
	Role    string `gorm:"not null;default:'member'"`  // "admin", "member"
	Status  string `gorm:"not null;default:'pending'"` // "pending", "accepted"

	// Relationships
	Group Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
