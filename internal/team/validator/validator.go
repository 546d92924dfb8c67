// Package validator checks team registration payloads against the
// team-type rules before persistence is attempted.
package validator

import (
	"strings"

	"github.com/trenchcomp/teams-service/internal/team/model"
)

// Rejection messages, returned verbatim to the caller.
const (
	MsgFieldsRequired   = "All fields are required"
	MsgInvalidTeamType  = "Invalid team type"
	MsgDuoMemberCount   = "Duo teams must have exactly 1 member"
	MsgTrioMemberCount  = "Trio teams must have exactly 2 members"
	MsgFNFMemberCount   = "FNF teams must have at least 1 member"
	MsgEmptyAddress     = "All wallet addresses must be non-empty"
	MsgOwnerInMembers   = "Team members cannot include your own wallet address"
	MsgDuplicateMembers = "Each team member must have a unique wallet address"
)

// Validate checks req against the registration rules in fixed order and
// returns the first failure as a *model.ValidationError, or nil when the
// payload is acceptable. It has no side effects and touches no storage.
//
// Rule order: required fields, team type, member count for the type,
// non-empty member addresses, owner not among members, no duplicate members.
func Validate(req *model.RegisterTeamRequest) error {
	if strings.TrimSpace(req.TeamName) == "" ||
		req.TeamType == "" ||
		strings.TrimSpace(req.OwnerWalletAddress) == "" ||
		req.MemberWalletAddresses == nil {
		return model.NewValidationError(MsgFieldsRequired)
	}

	if !req.TeamType.IsValid() {
		return model.NewValidationError(MsgInvalidTeamType)
	}

	if !req.TeamType.MemberCountValid(len(req.MemberWalletAddresses)) {
		switch req.TeamType {
		case model.TeamTypeDuo:
			return model.NewValidationError(MsgDuoMemberCount)
		case model.TeamTypeTrio:
			return model.NewValidationError(MsgTrioMemberCount)
		default:
			return model.NewValidationError(MsgFNFMemberCount)
		}
	}

	for _, addr := range req.MemberWalletAddresses {
		if strings.TrimSpace(addr) == "" {
			return model.NewValidationError(MsgEmptyAddress)
		}
	}

	owner := strings.TrimSpace(req.OwnerWalletAddress)
	seen := make(map[string]struct{}, len(req.MemberWalletAddresses))
	for _, addr := range req.MemberWalletAddresses {
		trimmed := strings.TrimSpace(addr)
		if trimmed == owner {
			return model.NewValidationError(MsgOwnerInMembers)
		}
		seen[trimmed] = struct{}{}
	}

	if len(seen) != len(req.MemberWalletAddresses) {
		return model.NewValidationError(MsgDuplicateMembers)
	}

	return nil
}
