package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/apperr"
)

func TestDashboardStatsAggregateQueueAndScores(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	submittedItem := seedInteractionItem(t, env)
	seedInteractionItem(t, env) // stays pending

	ctx := context.Background()
	sessionId := openSession(t, env, reviewer.Id)

	_, err := env.reviews.Submit(ctx, submittedItem.Id, reviewer.Id, &dto.SubmitRequest{
		SessionId: sessionId,
		Scores: map[string]dto.SegmentScoreInput{
			"S1": {Score: 4},
			"S2": {Score: 2},
		},
	})
	require.NoError(t, err)

	stats, err := env.admin.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.QueueCountsByStatus[constant.StatusPending])
	assert.Equal(t, int64(1), stats.QueueCountsByStatus[constant.StatusSubmitted])
	assert.Equal(t, int64(0), stats.QueueCountsByStatus[constant.StatusFlagged])
	assert.InDelta(t, 3.0, stats.AverageScoreByIntent["interaction"], 0.001)
	assert.Equal(t, int64(1), stats.TotalReviewers)
	assert.Equal(t, int64(1), stats.TotalProductionWrite)
}

func TestFlaggedItemsListCurrentFlags(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedInteractionItem(t, env)

	ctx := context.Background()
	sessionId := openSession(t, env, reviewer.Id)

	_, err := env.reviews.Flag(ctx, item.Id, reviewer.Id, &dto.FlagRequest{
		SessionId: sessionId,
		Reason:    "dose unit looks wrong",
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 1}},
	})
	require.NoError(t, err)

	flagged, err := env.admin.FlaggedItems(ctx)
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, item.Id, flagged[0].QueueItemId)
	assert.Equal(t, "dose unit looks wrong", flagged[0].FlagReason)
	assert.Equal(t, reviewer.Id, flagged[0].ReviewerId)
}

func TestSetReviewerActiveUnknownReviewer(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})

	_, err := env.admin.SetReviewerActive(context.Background(), uuid.New(), false)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestMarkProductionUpdateRolledBackOnce(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedInteractionItem(t, env)

	ctx := context.Background()
	sessionId := openSession(t, env, reviewer.Id)

	res, err := env.reviews.Submit(ctx, item.Id, reviewer.Id, &dto.SubmitRequest{
		SessionId: sessionId,
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 2, Suggestion: "edited"}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.ProductionUpdate)

	marked, err := env.admin.MarkProductionUpdateRolledBack(ctx, res.ProductionUpdate.Id, "reverted after clinical escalation")
	require.NoError(t, err)
	assert.True(t, marked.RolledBack)

	_, err = env.admin.MarkProductionUpdateRolledBack(ctx, res.ProductionUpdate.Id, "again")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))
}

func TestReviewersListIncludesCounters(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedInteractionItem(t, env)

	ctx := context.Background()
	sessionId := openSession(t, env, reviewer.Id)

	_, err := env.reviews.SaveDraft(ctx, item.Id, reviewer.Id, &dto.SaveDraftRequest{
		SessionId: sessionId,
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 3}},
	})
	require.NoError(t, err)

	reviewers, err := env.admin.Reviewers(ctx)
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	assert.Equal(t, reviewer.Email, reviewers[0].Email)
	assert.Equal(t, 1, reviewers[0].TotalDraftsSaved)
}
