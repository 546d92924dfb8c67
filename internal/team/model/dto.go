// Package model provides domain models and DTOs for the team module.
package model

import (
	"strings"
	"time"
)

// RegisterTeamRequest represents the request to register a new team.
type RegisterTeamRequest struct {
	TeamName              string   `json:"teamName"`
	TeamType              TeamType `json:"teamType"`
	OwnerWalletAddress    string   `json:"ownerWalletAddress"`
	MemberWalletAddresses []string `json:"memberWalletAddresses"`
}

// Normalize trims surrounding whitespace from the name and all wallet
// addresses in place. Validation and persistence operate on the trimmed
// values.
func (r *RegisterTeamRequest) Normalize() {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.OwnerWalletAddress = strings.TrimSpace(r.OwnerWalletAddress)
	for i, addr := range r.MemberWalletAddresses {
		r.MemberWalletAddresses[i] = strings.TrimSpace(addr)
	}
}

// TeamSummary is the projection of a team used by list views and the
// team:created broadcast event. Owner and member addresses are omitted.
type TeamSummary struct {
	ID        string    `json:"id"`
	TeamName  string    `json:"teamName"`
	TeamType  TeamType  `json:"teamType"`
	CreatedAt time.Time `json:"createdAt"`
}

// CountResponse represents the response of the team count endpoint.
type CountResponse struct {
	Count int64 `json:"count"`
}
