package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/production"
	"qa-review-be/internal/repository/unitofwork"
)

// fakePublisher records flagged events instead of pushing them on the bus.
type fakePublisher struct {
	events []dto.ReviewFlaggedMessage
}

func (f *fakePublisher) PublishReviewFlagged(payload dto.ReviewFlaggedMessage) {
	f.events = append(f.events, payload)
}

type testEnv struct {
	db         *gorm.DB
	factory    unitofwork.RepositoryFactory
	publisher  *fakePublisher
	production IProductionService
	reviews    IReviewService
	queue      IQueueService
	sessions   ISessionService
	admin      IAdminService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection keeps the in-memory database and its attached schemas
	// alive across the whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Reviewer{},
		&model.ResponseQueue{},
		&model.Review{},
		&model.ReviewAuditLog{},
		&model.RereviewRequest{},
		&model.ReviewSession{},
		&model.ProductionUpdate{},
	))
	return db
}

func newTestEnv(t *testing.T, reviewCfg config.ReviewConfig) *testEnv {
	t.Helper()

	db := newTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	publisher := &fakePublisher{}
	registry := production.DefaultRegistry()

	productionService := NewProductionService(factory, registry, config.ProductionConfig{}, sysLogger)

	return &testEnv{
		db:         db,
		factory:    factory,
		publisher:  publisher,
		production: productionService,
		reviews:    NewReviewService(factory, productionService, publisher, reviewCfg, sysLogger),
		queue:      NewQueueService(factory, reviewCfg, sysLogger),
		sessions:   NewSessionService(factory, sysLogger),
		admin:      NewAdminService(factory, sysLogger),
	}
}

func seedReviewer(t *testing.T, env *testEnv, role string) *entity.Reviewer {
	t.Helper()

	reviewer := &entity.Reviewer{
		Id:       uuid.New(),
		Email:    uuid.NewString() + "@example.com",
		FullName: "Test Reviewer",
		Role:     role,
		IsActive: true,
	}
	uow := env.factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.ReviewerRepository().Create(context.Background(), reviewer))
	return reviewer
}

func seedInteractionItem(t *testing.T, env *testEnv) *entity.ResponseQueue {
	t.Helper()

	item := &entity.ResponseQueue{
		Id:        uuid.New(),
		Intent:    "interaction",
		QueryText: "Can I take warfarin with aspirin?",
		Slots:     map[string]string{"drug_a": "warfarin", "drug_b": "aspirin"},
		Segments: []entity.Segment{
			{Id: "S1", Text: "Combining warfarin and aspirin increases bleeding risk."},
			{Id: "S2", Text: "Avoid the combination unless directed by a prescriber."},
			{Id: "S3", Text: "Both agents impair hemostasis via complementary mechanisms."},
			{Id: "S4", Text: "Source: FDA label for warfarin sodium."},
		},
		Status: constant.StatusPending,
	}
	uow := env.factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.ResponseQueueRepository().Create(context.Background(), item))
	return item
}

func seedDosingItem(t *testing.T, env *testEnv) *entity.ResponseQueue {
	t.Helper()

	item := &entity.ResponseQueue{
		Id:        uuid.New(),
		Intent:    "dosing",
		QueryText: "What is the amoxicillin dose for sinusitis?",
		Slots:     map[string]string{"drug": "amoxicillin", "indication": "sinusitis"},
		Segments: []entity.Segment{
			{Id: "S1", Text: "The usual adult dose is 500 mg."},
			{Id: "S2", Text: "Take it every 8 hours for 10 days."},
			{Id: "S3", Text: "Take with food if stomach upset occurs."},
			{Id: "S4", Text: "Source: curated dosing reference."},
		},
		Status: constant.StatusPending,
	}
	uow := env.factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.ResponseQueueRepository().Create(context.Background(), item))
	return item
}

func openSession(t *testing.T, env *testEnv, reviewerId uuid.UUID) uuid.UUID {
	t.Helper()

	res, err := env.sessions.Open(context.Background(), reviewerId)
	require.NoError(t, err)
	return res.SessionId
}

// setupInteractionTable attaches the production DDI schema and inserts the
// warfarin + aspirin row the seeded interaction item points at.
func setupInteractionTable(t *testing.T, env *testEnv) {
	t.Helper()

	require.NoError(t, env.db.Exec(`ATTACH DATABASE ':memory:' AS public`).Error)
	require.NoError(t, env.db.Exec(`CREATE TABLE public.document_ddi_pairs (
		subject_drug TEXT,
		object_drug TEXT,
		effect_s1 TEXT,
		guidance TEXT,
		effect_complete TEXT,
		effect TEXT,
		set_id TEXT,
		version TEXT,
		severity TEXT,
		mechanism TEXT,
		evidence TEXT,
		quotes TEXT
	)`).Error)
	require.NoError(t, env.db.Exec(`INSERT INTO public.document_ddi_pairs
		(subject_drug, object_drug, effect_s1, guidance, effect_complete, effect, set_id, version, severity, mechanism, evidence, quotes)
		VALUES ('warfarin', 'aspirin', 'old effect', 'old guidance', 'old complete', 'old effect', 'abc-123', '4', 'major', '', 'established',
		'[{"span_text": "Concomitant use increases bleeding risk.", "section_key": "drug_interactions", "start": 10, "end": 52}]')`).Error)
}

func setupDosingTable(t *testing.T, env *testEnv) {
	t.Helper()

	require.NoError(t, env.db.Exec(`ATTACH DATABASE ':memory:' AS content`).Error)
	require.NoError(t, env.db.Exec(`CREATE TABLE content.drug_dosing (
		drug_id TEXT,
		indication TEXT,
		dose_value TEXT,
		frequency TEXT,
		special_considerations TEXT
	)`).Error)
	require.NoError(t, env.db.Exec(`INSERT INTO content.drug_dosing
		(drug_id, indication, dose_value, frequency, special_considerations)
		VALUES ('amoxicillin', 'sinusitis', 'old dose', 'old frequency', 'old considerations')`).Error)
}
