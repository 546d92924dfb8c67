package model

import (
	"time"
)

// TeamType is the declared category of a team. It fixes the number of
// member wallet addresses a registration must carry.
type TeamType string

// Recognized team types.
const (
	TeamTypeDuo  TeamType = "Duo"
	TeamTypeTrio TeamType = "Trio"
	TeamTypeFNF  TeamType = "FNF"
)

// IsValid reports whether t is one of the recognized team types.
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeDuo, TeamTypeTrio, TeamTypeFNF:
		return true
	}
	return false
}

// MemberCountValid reports whether n member addresses satisfy the
// cardinality rule for this team type: Duo needs exactly 1, Trio exactly 2,
// FNF at least 1.
func (t TeamType) MemberCountValid(n int) bool {
	switch t {
	case TeamTypeDuo:
		return n == 1
	case TeamTypeTrio:
		return n == 2
	case TeamTypeFNF:
		return n >= 1
	}
	return false
}

// Team represents a registered team. Records are append-only: once
// persisted they are never updated or deleted.
// Matches the teams table schema.
type Team struct {
	ID                    string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	TeamName              string    `gorm:"column:team_name;type:varchar(255);not null" json:"teamName"`
	TeamType              TeamType  `gorm:"column:team_type;type:varchar(8);not null" json:"teamType"`
	OwnerWalletAddress    string    `gorm:"column:owner_wallet_address;type:varchar(255);not null" json:"ownerWalletAddress"`
	MemberWalletAddresses []string  `gorm:"column:member_wallet_addresses;type:text;not null;serializer:json" json:"memberWalletAddresses"`
	CreatedAt             time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// Summary projects a team to the fields shown in list views and pushed
// over the broadcast channel.
func (t *Team) Summary() TeamSummary {
	return TeamSummary{
		ID:        t.ID,
		TeamName:  t.TeamName,
		TeamType:  t.TeamType,
		CreatedAt: t.CreatedAt,
	}
}
