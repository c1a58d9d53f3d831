package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/internal/domain/mocks"
	"github.com/schedmail/email-worker/pkg/logger"
)

func TestWorkerService_Run(t *testing.T) {
	t.Run("collects one entry per email in list order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		emails := []domain.ScheduledEmail{
			{ID: uuid.New()},
			{ID: uuid.New()},
			{ID: uuid.New()},
		}

		api := mocks.NewMockScheduledEmailAPI(ctrl)
		api.EXPECT().ListScheduledToRun(gomock.Any()).Return(emails, nil)

		pipeline := mocks.NewMockEmailPipeline(ctrl)
		for _, email := range emails {
			email := email
			pipeline.EXPECT().
				Process(gomock.Any(), email).
				Return(domain.WorkerOutputEmail{
					Email:  domain.ScheduledEmail{ID: email.ID, State: domain.ScheduledEmailStatusSucceeded},
					Status: "succeeded",
				}, nil)
		}

		svc := NewWorkerService(api, pipeline, logger.NewMockLogger())

		output, err := svc.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, output.Emails, 3)
		for i, entry := range output.Emails {
			assert.Equal(t, emails[i].ID, entry.Email.ID)
			assert.Equal(t, "succeeded", entry.Status)
		}
	})

	t.Run("empty listing yields an empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := mocks.NewMockScheduledEmailAPI(ctrl)
		api.EXPECT().ListScheduledToRun(gomock.Any()).Return(nil, nil)

		svc := NewWorkerService(api, mocks.NewMockEmailPipeline(ctrl), logger.NewMockLogger())

		output, err := svc.Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, output.Emails)
	})

	t.Run("listing failure aborts the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := mocks.NewMockScheduledEmailAPI(ctrl)
		api.EXPECT().ListScheduledToRun(gomock.Any()).Return(nil, errors.New("connection refused"))

		svc := NewWorkerService(api, mocks.NewMockEmailPipeline(ctrl), logger.NewMockLogger())

		_, err := svc.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list scheduled emails")
	})

	t.Run("one failing pipeline does not take siblings down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		good := domain.ScheduledEmail{ID: uuid.New()}
		bad := domain.ScheduledEmail{ID: uuid.New()}

		api := mocks.NewMockScheduledEmailAPI(ctrl)
		api.EXPECT().ListScheduledToRun(gomock.Any()).Return([]domain.ScheduledEmail{good, bad}, nil)

		pipeline := mocks.NewMockEmailPipeline(ctrl)
		pipeline.EXPECT().
			Process(gomock.Any(), good).
			Return(domain.WorkerOutputEmail{Email: good, Status: "succeeded"}, nil)
		pipeline.EXPECT().
			Process(gomock.Any(), bad).
			Return(domain.WorkerOutputEmail{}, &domain.LockError{ID: bad.ID, Err: errors.New("409 conflict")})

		svc := NewWorkerService(api, pipeline, logger.NewMockLogger())

		output, err := svc.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, output.Emails, 2)
		assert.Equal(t, "succeeded", output.Emails[0].Status)
		assert.Equal(t, "failed", output.Emails[1].Status)
		assert.Equal(t, bad.ID, output.Emails[1].Email.ID)
	})

	t.Run("a panicking pipeline collapses into a failed entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		good := domain.ScheduledEmail{ID: uuid.New()}
		panicking := domain.ScheduledEmail{ID: uuid.New()}

		api := mocks.NewMockScheduledEmailAPI(ctrl)
		api.EXPECT().ListScheduledToRun(gomock.Any()).Return([]domain.ScheduledEmail{panicking, good}, nil)

		pipeline := mocks.NewMockEmailPipeline(ctrl)
		pipeline.EXPECT().
			Process(gomock.Any(), panicking).
			DoAndReturn(func(context.Context, domain.ScheduledEmail) (domain.WorkerOutputEmail, error) {
				panic("nil dereference")
			})
		pipeline.EXPECT().
			Process(gomock.Any(), good).
			Return(domain.WorkerOutputEmail{Email: good, Status: "succeeded"}, nil)

		svc := NewWorkerService(api, pipeline, logger.NewMockLogger())

		output, err := svc.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, output.Emails, 2)
		assert.Equal(t, "failed", output.Emails[0].Status)
		assert.Equal(t, panicking.ID, output.Emails[0].Email.ID)
		assert.Equal(t, "succeeded", output.Emails[1].Status)
	})
}
