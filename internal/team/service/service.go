// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"go.uber.org/zap"

	teamModel "github.com/trenchcomp/teams-service/internal/team/model"
	"github.com/trenchcomp/teams-service/internal/team/repository"
	"github.com/trenchcomp/teams-service/internal/team/validator"
)

// Broadcaster delivers team:created notifications to connected viewers.
// Publication is best-effort: implementations must not block registration
// and the service never inspects delivery outcomes. A no-op implementation
// stands in when the realtime layer is disabled.
type Broadcaster interface {
	PublishTeamCreated(summary teamModel.TeamSummary)
}

// Service defines the interface for team business logic operations.
type Service interface {
	// Register validates a registration payload, persists it and
	// broadcasts a creation event to connected viewers.
	Register(ctx context.Context, req *teamModel.RegisterTeamRequest) (*teamModel.Team, error)

	// List returns all teams, newest first.
	List(ctx context.Context) ([]teamModel.Team, error)

	// ListRecent returns the limit most recent team summaries, newest first.
	ListRecent(ctx context.Context, limit int) ([]teamModel.TeamSummary, error)

	// GetByID returns a single team or model.ErrTeamNotFound.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// Count returns the total number of registered teams.
	Count(ctx context.Context) (int64, error)
}

// DefaultRecentLimit is used when the caller supplies no usable limit.
const DefaultRecentLimit = 10

type service struct {
	repo        repository.Repository
	broadcaster Broadcaster
	logger      *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, broadcaster Broadcaster, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Register validates the payload, persists the team and publishes a
// team:created event. The record is durably persisted before publication
// is attempted; a failed or absent broadcast never fails the registration.
func (s *service) Register(ctx context.Context, req *teamModel.RegisterTeamRequest) (*teamModel.Team, error) {
	req.Normalize()

	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	team := &teamModel.Team{
		TeamName:              req.TeamName,
		TeamType:              req.TeamType,
		OwnerWalletAddress:    req.OwnerWalletAddress,
		MemberWalletAddresses: req.MemberWalletAddresses,
	}

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	s.broadcaster.PublishTeamCreated(created.Summary())

	return created, nil
}

// List returns all teams, newest first.
func (s *service) List(ctx context.Context) ([]teamModel.Team, error) {
	return s.repo.List(ctx)
}

// ListRecent returns the limit most recent team summaries. Non-positive
// limits fall back to DefaultRecentLimit.
func (s *service) ListRecent(ctx context.Context, limit int) ([]teamModel.TeamSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

// GetByID returns a single team or model.ErrTeamNotFound.
func (s *service) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// Count returns the total number of registered teams.
func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
