package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/repository/specification"
)

func TestOpenClosesDanglingSession(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()

	first, err := env.sessions.Open(ctx, reviewer.Id)
	require.NoError(t, err)

	second, err := env.sessions.Open(ctx, reviewer.Id)
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionId, second.SessionId)

	uow := env.factory.NewUnitOfWork(ctx)
	old, err := uow.ReviewSessionRepository().FindOne(ctx, specification.ByID{ID: first.SessionId})
	require.NoError(t, err)
	assert.NotNil(t, old.SessionEnd)

	open, err := uow.ReviewSessionRepository().FindAll(ctx,
		specification.ByReviewer{ReviewerID: reviewer.Id},
		specification.OpenSession{},
	)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestOpenRejectsDeactivatedReviewer(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()

	_, err := env.admin.SetReviewerActive(ctx, reviewer.Id, false)
	require.NoError(t, err)

	_, err = env.sessions.Open(ctx, reviewer.Id)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestCloseTwiceConflicts(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()
	sessionId := openSession(t, env, reviewer.Id)

	require.NoError(t, env.sessions.Close(ctx, sessionId, reviewer.Id))

	err := env.sessions.Close(ctx, sessionId, reviewer.Id)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))
}

func TestStatsCoverSessionAndLifetimeCounters(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedInteractionItem(t, env)
	other := seedInteractionItem(t, env)

	ctx := context.Background()
	sessionId := openSession(t, env, reviewer.Id)

	require.NoError(t, env.reviews.Skip(ctx, item.Id, reviewer.Id, sessionId))
	_, err := env.reviews.SaveDraft(ctx, other.Id, reviewer.Id, &dto.SaveDraftRequest{
		SessionId: sessionId,
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 3}},
	})
	require.NoError(t, err)

	stats, err := env.sessions.Stats(ctx, sessionId, reviewer.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ReviewsSkipped)
	assert.Equal(t, 1, stats.ReviewsDrafted)
	assert.Equal(t, 0, stats.ReviewsCompleted)
	assert.Equal(t, 1, stats.TotalDrafts)
	assert.Equal(t, 0, stats.TotalSubmitted)
}

func TestStatsRejectOtherReviewers(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	owner := seedReviewer(t, env, constant.RoleReviewer)
	intruder := seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()
	sessionId := openSession(t, env, owner.Id)

	_, err := env.sessions.Stats(ctx, sessionId, intruder.Id)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}
