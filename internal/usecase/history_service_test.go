package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/infrastructure/repository/memory"
	seasonmock "github.com/riskibarqy/league-history/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/league-history/internal/mocks/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_ListHistory_OrdersSeasonsAndMarksFootnotes(t *testing.T) {
	t.Parallel()

	service := NewHistoryService(
		memory.NewSeasonRepository(memory.SeedSeasons()),
		memory.NewTeamRepository(memory.SeedTeams()),
		map[int]bool{2021: true, 2022: false},
	)

	history, err := service.ListHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 4)

	got := make([]string, 0, len(history))
	for _, item := range history {
		got = append(got, item.Heading)
	}
	assert.Equal(t, []string{"2023 Dynasty", "2022 Dynasty", "2022 Redraft", "2021 Redraft*"}, got)

	assert.False(t, history[0].Footnote)
	assert.False(t, history[1].Footnote)
	assert.True(t, history[3].Footnote)
	assert.Equal(t, season.MedalGold, history[3].Rows[0].Medal)
	assert.Equal(t, []int{2021}, service.FootnoteYears())
}

func TestHistoryService_ListTeams(t *testing.T) {
	t.Parallel()

	service := NewHistoryService(
		memory.NewSeasonRepository(nil),
		memory.NewTeamRepository(memory.SeedTeams()),
		nil,
	)

	teams, err := service.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, len(memory.SeedTeams()))
	assert.Equal(t, "alex", teams[0].ID)
	assert.Empty(t, service.FootnoteYears())
}

func TestHistoryService_ListHistory_TeamRepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("directory unavailable")
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	seasonRepo.On("List", mock.Anything).Return(memory.SeedSeasons(), nil).Once()
	teamRepo.On("List", mock.Anything).Return(nil, repoErr).Once()

	service := NewHistoryService(seasonRepo, teamRepo, nil)

	_, err := service.ListHistory(context.Background())
	require.ErrorIs(t, err, repoErr)
}
