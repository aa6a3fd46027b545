package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
)

func TestReconcileWritesDosingColumns(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupDosingTable(t, env)
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedDosingItem(t, env)

	ctx := context.Background()

	review := &entity.Review{
		Id:              uuid.New(),
		ResponseQueueId: item.Id,
		ReviewerId:      reviewer.Id,
		Version:         1,
		IsCurrent:       true,
		Status:          constant.StatusSubmitted,
		SegmentScores: map[string]entity.SegmentScore{
			"S1": {Score: 3, Suggestion: "875 mg twice daily for severe infection."},
			"S3": {Score: 5},
		},
	}

	uow := env.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	record, err := env.production.Reconcile(ctx, uow, item, review)
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	require.NotNil(t, record)
	assert.Equal(t, "content.drug_dosing", record.TargetTable)
	assert.Equal(t, "old dose", record.OriginalData["dose_value"])
	assert.Equal(t, "875 mg twice daily for severe infection.", record.UpdatedData["dose_value"])

	var row struct {
		DoseValue             string
		Frequency             string
		SpecialConsiderations string
	}
	require.NoError(t, env.db.Raw(
		`SELECT dose_value, frequency, special_considerations FROM content.drug_dosing WHERE drug_id = 'amoxicillin'`,
	).Scan(&row).Error)
	assert.Equal(t, "875 mg twice daily for severe infection.", row.DoseValue)
	// S2 was not scored, so frequency keeps its published value.
	assert.Equal(t, "old frequency", row.Frequency)
	// S3 scored without suggestion falls back to the generated text.
	assert.Equal(t, "Take with food if stomach upset occurs.", row.SpecialConsiderations)
}

func TestReconcileNoMappedFieldsIsANoOp(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	reviewer := seedReviewer(t, env, constant.RoleReviewer)
	item := seedInteractionItem(t, env)

	ctx := context.Background()

	// S4 is display-only for the interaction intent.
	review := &entity.Review{
		Id:              uuid.New(),
		ResponseQueueId: item.Id,
		ReviewerId:      reviewer.Id,
		Version:         1,
		Status:          constant.StatusSubmitted,
		SegmentScores: map[string]entity.SegmentScore{
			"S4": {Score: 5},
		},
	}

	uow := env.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	record, err := env.production.Reconcile(ctx, uow, item, review)
	require.NoError(t, err)
	require.NoError(t, uow.Commit())
	assert.Nil(t, record)

	var effect string
	require.NoError(t, env.db.Raw(
		`SELECT effect_s1 FROM public.document_ddi_pairs WHERE subject_drug = 'warfarin'`,
	).Scan(&effect).Error)
	assert.Equal(t, "old effect", effect)

	count, err := env.factory.NewUnitOfWork(ctx).ProductionUpdateRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReconcileUnknownIntent(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	reviewer := seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()

	item := &entity.ResponseQueue{
		Id:     uuid.New(),
		Intent: "pregnancy_safety",
		Slots:  map[string]string{"drug": "warfarin"},
	}
	review := &entity.Review{
		Id:         uuid.New(),
		ReviewerId: reviewer.Id,
		SegmentScores: map[string]entity.SegmentScore{
			"S1": {Score: 3},
		},
	}

	uow := env.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback() }()

	_, err := env.production.Reconcile(ctx, uow, item, review)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestReconcileMissingLookupSlot(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	reviewer := seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()

	item := &entity.ResponseQueue{
		Id:     uuid.New(),
		Intent: "interaction",
		Slots:  map[string]string{"drug_a": "warfarin"}, // drug_b missing
	}
	review := &entity.Review{
		Id:         uuid.New(),
		ReviewerId: reviewer.Id,
		SegmentScores: map[string]entity.SegmentScore{
			"S1": {Score: 3, Suggestion: "edit"},
		},
	}

	uow := env.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback() }()

	_, err := env.production.Reconcile(ctx, uow, item, review)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestFetchSourceDataFormatsInteractionRow(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupInteractionTable(t, env)
	item := seedInteractionItem(t, env)

	res, err := env.production.FetchSourceData(context.Background(), item.Id)
	require.NoError(t, err)
	assert.Equal(t, "interaction", res.Intent)
	assert.Equal(t, "warfarin + aspirin", res.Data["Drug Pair"])
	assert.Equal(t, "major", res.Data["Severity"])
	assert.Equal(t, "Not specified", res.Data["Mechanism"])

	quotes, ok := res.Data["FDA Source Quotes"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Concomitant use increases bleeding risk.", quotes[0]["text"])
	assert.Equal(t, "drug_interactions", quotes[0]["section"])
	assert.Equal(t, "Characters 10-52", quotes[0]["position"])
}

func TestFetchSourceDataReturnsRawDosingRow(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	setupDosingTable(t, env)
	item := seedDosingItem(t, env)

	res, err := env.production.FetchSourceData(context.Background(), item.Id)
	require.NoError(t, err)
	assert.Equal(t, "dosing", res.Intent)
	assert.Equal(t, "old dose", res.Data["dose_value"])
	assert.Equal(t, "old frequency", res.Data["frequency"])
}

func TestFetchSourceDataUnknownItem(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})

	_, err := env.production.FetchSourceData(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
