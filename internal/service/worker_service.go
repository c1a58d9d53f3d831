package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// WorkerService drives one batch run: list the eligible emails, fan out
// one pipeline per email, gather the results in list order. A pipeline
// failure, panic included, never takes a sibling down.
type WorkerService struct {
	api      domain.ScheduledEmailAPI
	pipeline domain.EmailPipeline
	logger   logger.Logger
}

func NewWorkerService(api domain.ScheduledEmailAPI, pipeline domain.EmailPipeline, logger logger.Logger) *WorkerService {
	return &WorkerService{
		api:      api,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Run executes a single batch and returns one summary entry per eligible
// email, in the order the listing returned them.
func (w *WorkerService) Run(ctx context.Context) (*domain.WorkerOutput, error) {
	emails, err := w.api.ListScheduledToRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled emails: %w", err)
	}
	w.logger.Info(fmt.Sprintf("There are %d emails scheduled to run.", len(emails)))

	results := make([]domain.WorkerOutputEmail, len(emails))
	var wg sync.WaitGroup
	for i, email := range emails {
		i, email := i, email
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = w.processOne(ctx, email)
		}()
	}
	wg.Wait()

	return &domain.WorkerOutput{Emails: results}, nil
}

// processOne isolates a single pipeline run: errors and panics both
// collapse into a failed batch entry for that email alone.
func (w *WorkerService) processOne(ctx context.Context, email domain.ScheduledEmail) (result domain.WorkerOutputEmail) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.WithField("email_id", email.ID.String()).
				Error(fmt.Sprintf("Pipeline panicked: %v", r))
			result = failedEntry(email)
		}
	}()

	output, err := w.pipeline.Process(ctx, email)
	if err != nil {
		w.logger.WithField("email_id", email.ID.String()).
			Error(fmt.Sprintf("Pipeline failed: %v", err))
		return failedEntry(email)
	}
	return output
}

func failedEntry(email domain.ScheduledEmail) domain.WorkerOutputEmail {
	return domain.WorkerOutputEmail{
		Email:  email,
		Status: string(domain.ScheduledEmailStatusFailed),
	}
}
