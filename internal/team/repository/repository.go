// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/trenchcomp/teams-service/internal/team/model"
)

// Repository defines the interface for team data access operations.
// Teams are append-only: there are no update or delete operations.
type Repository interface {
	// Create inserts a new team, assigning its ID and CreatedAt.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// GetByID finds a team by its ID.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// List returns all teams, newest first.
	List(ctx context.Context) ([]teamModel.Team, error)

	// ListRecent returns the limit most recently created teams, newest
	// first, projected to summary fields.
	ListRecent(ctx context.Context, limit int) ([]teamModel.TeamSummary, error)

	// Count returns the total number of teams.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new team, assigning its ID and CreatedAt.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	team.ID = uuid.NewString()
	team.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// GetByID finds a team by its ID.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// List returns all teams, newest first.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	if teams == nil {
		return []teamModel.Team{}, nil
	}

	return teams, nil
}

// ListRecent returns the limit most recently created teams, newest first,
// projected to summary fields.
func (r *repository) ListRecent(ctx context.Context, limit int) ([]teamModel.TeamSummary, error) {
	var summaries []teamModel.TeamSummary

	err := r.db.WithContext(ctx).
		Table("teams").
		Select("id, team_name, team_type, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	if summaries == nil {
		return []teamModel.TeamSummary{}, nil
	}

	return summaries, nil
}

// Count returns the total number of teams.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
