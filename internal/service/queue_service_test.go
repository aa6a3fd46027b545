package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
)

func TestNextReturnsOldestUnreviewedItem(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	first := seedInteractionItem(t, env)
	seedInteractionItem(t, env)

	res, err := env.queue.Next(context.Background(), "interaction", reviewer.Id)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, first.Id, res.Item.Id)
	assert.Equal(t, "interaction", res.Item.Intent)
	assert.Len(t, res.Item.Segments, 4)
}

func TestNextFiltersByIntent(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	seedInteractionItem(t, env)
	dosing := seedDosingItem(t, env)

	res, err := env.queue.Next(context.Background(), "dosing", reviewer.Id)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, dosing.Id, res.Item.Id)
}

func TestNextExhaustedQueueIsNotAnError(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)

	res, err := env.queue.Next(context.Background(), "interaction", reviewer.Id)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Item)
}

func TestNextSkipsItemsTheReviewerAlreadyTouched(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedInteractionItem(t, env)
	sessionId := openSession(t, env, reviewer.Id)

	ctx := context.Background()

	_, err := env.reviews.SaveDraft(ctx, item.Id, reviewer.Id, &dto.SaveDraftRequest{
		SessionId: sessionId,
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 3}},
	})
	require.NoError(t, err)

	res, err := env.queue.Next(ctx, "interaction", reviewer.Id)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestNextPrioritizesApprovedRereviews(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	reviewed := seedInteractionItem(t, env)
	seedInteractionItem(t, env) // fresh item, would win on age otherwise
	sessionId := openSession(t, env, reviewer.Id)

	ctx := context.Background()

	submitted, err := env.reviews.Submit(ctx, reviewed.Id, reviewer.Id, &dto.SubmitRequest{
		SessionId: sessionId,
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 4}},
	})
	require.NoError(t, err)

	_, err = env.reviews.RequestRereview(ctx, reviewer.Id, &dto.RequestRereviewRequest{
		ReviewId: submitted.Review.Id,
		Reason:   "new label revision published",
	})
	require.NoError(t, err)

	res, err := env.queue.Next(ctx, "interaction", reviewer.Id)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, reviewed.Id, res.Item.Id)
}

func TestNextRereviewPriorityIsPerReviewer(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	owner := seedReviewer(t, env, constant.RoleReviewer)
	other := seedReviewer(t, env, constant.RoleReviewer)
	reviewed := seedInteractionItem(t, env)
	fresh := seedInteractionItem(t, env)
	sessionId := openSession(t, env, owner.Id)

	ctx := context.Background()

	submitted, err := env.reviews.Submit(ctx, reviewed.Id, owner.Id, &dto.SubmitRequest{
		SessionId: sessionId,
		Scores:    map[string]dto.SegmentScoreInput{"S1": {Score: 4}},
	})
	require.NoError(t, err)

	_, err = env.reviews.RequestRereview(ctx, owner.Id, &dto.RequestRereviewRequest{
		ReviewId: submitted.Review.Id,
		Reason:   "second look needed",
	})
	require.NoError(t, err)

	// The rereviewed item already has a review, so for anyone else only the
	// untouched item qualifies.
	res, err := env.queue.Next(ctx, "interaction", other.Id)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, fresh.Id, res.Item.Id)
}

func TestClaimLeaseKeepsReviewersApart(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{ClaimTTL: time.Minute})
	alice := seedReviewer(t, env, constant.RoleReviewer)
	bob := seedReviewer(t, env, constant.RoleReviewer)
	first := seedInteractionItem(t, env)
	second := seedInteractionItem(t, env)

	ctx := context.Background()

	resA, err := env.queue.Next(ctx, "interaction", alice.Id)
	require.NoError(t, err)
	require.True(t, resA.Found)
	assert.Equal(t, first.Id, resA.Item.Id)

	resB, err := env.queue.Next(ctx, "interaction", bob.Id)
	require.NoError(t, err)
	require.True(t, resB.Found)
	assert.Equal(t, second.Id, resB.Item.Id)

	// The holder keeps its own lease on repeat calls.
	resA2, err := env.queue.Next(ctx, "interaction", alice.Id)
	require.NoError(t, err)
	require.True(t, resA2.Found)
	assert.Equal(t, first.Id, resA2.Item.Id)
}
