package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	teamModel "github.com/trenchcomp/teams-service/internal/team/model"
	"github.com/trenchcomp/teams-service/internal/team/validator"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]teamModel.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.Team), args.Error(1)
}

func (m *mockRepository) ListRecent(ctx context.Context, limit int) ([]teamModel.TeamSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.TeamSummary), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// captureBroadcaster records every published summary.
type captureBroadcaster struct {
	published []teamModel.TeamSummary
}

func (b *captureBroadcaster) PublishTeamCreated(summary teamModel.TeamSummary) {
	b.published = append(b.published, summary)
}

func validRequest() *teamModel.RegisterTeamRequest {
	return &teamModel.RegisterTeamRequest{
		TeamName:              "Alpha",
		TeamType:              teamModel.TeamTypeDuo,
		OwnerWalletAddress:    "OWNER1",
		MemberWalletAddresses: []string{"MEMBER1"},
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and broadcasts once", func(t *testing.T) {
		mockRepo := new(mockRepository)
		broadcaster := &captureBroadcaster{}
		svc := New(mockRepo, broadcaster, zap.NewNop().Sugar())

		persisted := &teamModel.Team{
			ID:                    "team-1",
			TeamName:              "Alpha",
			TeamType:              teamModel.TeamTypeDuo,
			OwnerWalletAddress:    "OWNER1",
			MemberWalletAddresses: []string{"MEMBER1"},
			CreatedAt:             time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Team")).Return(persisted, nil)

		created, err := svc.Register(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, persisted, created)
		require.Len(t, broadcaster.published, 1)
		assert.Equal(t, persisted.Summary(), broadcaster.published[0])
		mockRepo.AssertExpectations(t)
	})

	t.Run("trims fields before persisting", func(t *testing.T) {
		mockRepo := new(mockRepository)
		broadcaster := &captureBroadcaster{}
		svc := New(mockRepo, broadcaster, zap.NewNop().Sugar())

		var persisted *teamModel.Team
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Team")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*teamModel.Team)
			}).
			Return(&teamModel.Team{ID: "team-1"}, nil)

		req := &teamModel.RegisterTeamRequest{
			TeamName:              "  Alpha  ",
			TeamType:              teamModel.TeamTypeDuo,
			OwnerWalletAddress:    " OWNER1 ",
			MemberWalletAddresses: []string{" MEMBER1 "},
		}
		_, err := svc.Register(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, "Alpha", persisted.TeamName)
		assert.Equal(t, "OWNER1", persisted.OwnerWalletAddress)
		assert.Equal(t, []string{"MEMBER1"}, persisted.MemberWalletAddresses)
	})

	t.Run("validation failure writes nothing and broadcasts nothing", func(t *testing.T) {
		mockRepo := new(mockRepository)
		broadcaster := &captureBroadcaster{}
		svc := New(mockRepo, broadcaster, zap.NewNop().Sugar())

		req := validRequest()
		req.MemberWalletAddresses = []string{"OWNER1"}

		created, err := svc.Register(ctx, req)

		assert.Nil(t, created)
		var validationErr *teamModel.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, validator.MsgOwnerInMembers, validationErr.Message)
		assert.Empty(t, broadcaster.published)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure broadcasts nothing", func(t *testing.T) {
		mockRepo := new(mockRepository)
		broadcaster := &captureBroadcaster{}
		svc := New(mockRepo, broadcaster, zap.NewNop().Sugar())

		storeErr := errors.New("store unavailable")
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Team")).Return(nil, storeErr)

		created, err := svc.Register(ctx, validRequest())

		assert.Nil(t, created)
		assert.ErrorIs(t, err, storeErr)
		assert.Empty(t, broadcaster.published)
	})
}

func TestService_ListRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates with the given limit", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, &captureBroadcaster{}, zap.NewNop().Sugar())

		summaries := []teamModel.TeamSummary{{ID: "t1"}}
		mockRepo.On("ListRecent", mock.Anything, 3).Return(summaries, nil)

		result, err := svc.ListRecent(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, summaries, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, &captureBroadcaster{}, zap.NewNop().Sugar())

		mockRepo.On("ListRecent", mock.Anything, DefaultRecentLimit).Return([]teamModel.TeamSummary{}, nil)

		_, err := svc.ListRecent(ctx, 0)
		require.NoError(t, err)
		_, err = svc.ListRecent(ctx, -5)
		require.NoError(t, err)

		mockRepo.AssertNumberOfCalls(t, "ListRecent", 2)
	})
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("list delegates to repository", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, &captureBroadcaster{}, zap.NewNop().Sugar())

		teams := []teamModel.Team{{ID: "t1"}, {ID: "t2"}}
		mockRepo.On("List", mock.Anything).Return(teams, nil)

		result, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, teams, result)
	})

	t.Run("get by id passes through not found", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, &captureBroadcaster{}, zap.NewNop().Sugar())

		mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, teamModel.ErrTeamNotFound)

		team, err := svc.GetByID(ctx, "missing")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("count delegates to repository", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, &captureBroadcaster{}, zap.NewNop().Sugar())

		mockRepo.On("Count", mock.Anything).Return(int64(7), nil)

		count, err := svc.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}
