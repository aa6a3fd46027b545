package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/repository/specification"
	"qa-review-be/pkg/answer"
)

type fakeAnswerClient struct {
	res *answer.GenerateResponse
	err error
}

func (f *fakeAnswerClient) Generate(ctx context.Context, intent string, slots map[string]string) (*answer.GenerateResponse, error) {
	return f.res, f.err
}

func TestGenerateEnqueuesPendingItem(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	client := &fakeAnswerClient{
		res: &answer.GenerateResponse{
			Segments: []answer.Segment{
				{Id: "S1", Text: "The usual adult dose is 500 mg."},
				{Id: "S2", Text: "Take it every 8 hours."},
			},
			ServiceVersion: "2.3.1",
		},
	}
	intake := NewIntakeService(env.factory, client, sysLogger)

	ctx := context.Background()

	res, err := intake.Generate(ctx, &dto.GenerateRequest{
		Intent:    "dosing",
		QueryText: "What is the amoxicillin dose?",
		Slots:     map[string]string{"drug": "amoxicillin", "indication": "sinusitis"},
	})
	require.NoError(t, err)
	assert.Equal(t, constant.StatusPending, res.Status)
	assert.Len(t, res.Segments, 2)

	uow := env.factory.NewUnitOfWork(ctx)
	item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "dosing", item.Intent)
	require.NotNil(t, item.GeneratedByServiceVersion)
	assert.Equal(t, "2.3.1", *item.GeneratedByServiceVersion)
}

func TestGenerateReportsUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	intake := NewIntakeService(env.factory, &fakeAnswerClient{err: errors.New("connection refused")}, sysLogger)

	_, err := intake.Generate(context.Background(), &dto.GenerateRequest{
		Intent:    "dosing",
		QueryText: "What is the amoxicillin dose?",
		Slots:     map[string]string{"drug": "amoxicillin"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPersistence))
}

func TestGenerateRejectsEmptySegments(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	intake := NewIntakeService(env.factory, &fakeAnswerClient{res: &answer.GenerateResponse{}}, sysLogger)

	_, err := intake.Generate(context.Background(), &dto.GenerateRequest{
		Intent:    "dosing",
		QueryText: "What is the amoxicillin dose?",
		Slots:     map[string]string{"drug": "amoxicillin"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))
}

type fakeEmailService struct {
	sent []string
}

func (f *fakeEmailService) SendFlagAlert(toEmail, reviewerName, intent, queryText, reason string) error {
	f.sent = append(f.sent, toEmail)
	return nil
}

func TestFlaggedEventNotifiesActiveAdmins(t *testing.T) {
	env := newTestEnv(t, config.ReviewConfig{})
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	admin := seedReviewer(t, env, constant.RoleAdmin)
	inactiveAdmin := seedReviewer(t, env, constant.RoleAdmin)
	seedReviewer(t, env, constant.RoleReviewer)

	ctx := context.Background()
	_, err := env.admin.SetReviewerActive(ctx, inactiveAdmin.Id, false)
	require.NoError(t, err)

	emails := &fakeEmailService{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	consumer := NewConsumerService(pubSub, env.factory, emails, sysLogger).(*consumerService)

	payload, err := json.Marshal(dto.ReviewFlaggedMessage{
		QueueItemId:  uuid.New(),
		ReviewId:     uuid.New(),
		ReviewerId:   uuid.New(),
		ReviewerName: "Jordan Reviewer",
		Intent:       "interaction",
		QueryText:    "Can I take warfarin with aspirin?",
		Reason:       "contradicts FDA label",
	})
	require.NoError(t, err)

	msg := message.NewMessage(watermill.NewUUID(), payload)
	consumer.processMessage(ctx, msg)

	require.Len(t, emails.sent, 1)
	assert.Equal(t, admin.Email, emails.sent[0])
}
