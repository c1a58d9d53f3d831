package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/internal/domain/mocks"
	"github.com/schedmail/email-worker/pkg/logger"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func resultsPage(ids ...uuid.UUID) string {
	results := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		results = append(results, map[string]interface{}{
			"id":    id.String(),
			"state": "scheduled",
		})
	}
	payload, _ := json.Marshal(map[string]interface{}{"results": results})
	return string(payload)
}

func newStaticTokenProvider(ctrl *gomock.Controller) *mocks.MockTokenProvider {
	tokens := mocks.NewMockTokenProvider(ctrl)
	tokens.EXPECT().
		GetToken(gomock.Any()).
		Return(domain.AuthToken{Token: "tok-1", Expiry: time.Now().Add(time.Hour)}, nil).
		AnyTimes()
	return tokens
}

func TestScheduledEmailService_ListScheduledToRun(t *testing.T) {
	t.Run("walks pages until the first non-200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "Token tok-1", req.Header.Get("Authorization"))
				switch req.URL.String() {
				case "http://api.local/v2/scheduledemail/scheduled_to_run?page=1":
					return jsonResponse(http.StatusOK, resultsPage(id1, id2)), nil
				case "http://api.local/v2/scheduledemail/scheduled_to_run?page=2":
					return jsonResponse(http.StatusOK, resultsPage(id3)), nil
				case "http://api.local/v2/scheduledemail/scheduled_to_run?page=3":
					return jsonResponse(http.StatusNotFound, `{"detail":"Invalid page."}`), nil
				}
				return nil, fmt.Errorf("unexpected request %s", req.URL)
			}).
			Times(3)

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		emails, err := svc.ListScheduledToRun(context.Background())
		require.NoError(t, err)
		require.Len(t, emails, 3)
		assert.Equal(t, id1, emails[0].ID)
		assert.Equal(t, id2, emails[1].ID)
		assert.Equal(t, id3, emails[2].ID)
	})

	t.Run("stops at the page cap even when every page answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, resultsPage(uuid.New())), nil
			}).
			Times(4)

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 4, logger.NewMockLogger())

		emails, err := svc.ListScheduledToRun(context.Background())
		require.NoError(t, err)
		assert.Len(t, emails, 4)
	})

	t.Run("empty first page yields no emails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(jsonResponse(http.StatusNotFound, `{"detail":"Invalid page."}`), nil)

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		emails, err := svc.ListScheduledToRun(context.Background())
		require.NoError(t, err)
		assert.Empty(t, emails)
	})

	t.Run("transport error fails the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		_, err := svc.ListScheduledToRun(context.Background())
		assert.Error(t, err)
	})
}

func TestScheduledEmailService_Transitions(t *testing.T) {
	id := uuid.New()

	t.Run("lock posts the state transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "http://api.local/v2/scheduledemail/"+id.String()+"/lock", req.URL.String())
				assert.Nil(t, req.Body)
				return jsonResponse(http.StatusOK, `{"id":"`+id.String()+`","state":"locked"}`), nil
			})

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		email, err := svc.Lock(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.ScheduledEmailStatusLocked, email.State)
	})

	t.Run("fail carries the details payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
				body, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"details":"Failed to render email."}`, string(body))
				return jsonResponse(http.StatusOK, `{"id":"`+id.String()+`","state":"failed"}`), nil
			})

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		email, err := svc.Fail(context.Background(), id, "Failed to render email.")
		require.NoError(t, err)
		assert.Equal(t, domain.ScheduledEmailStatusFailed, email.State)
	})

	t.Run("succeed carries the details payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "http://api.local/v2/scheduledemail/"+id.String()+"/succeed", req.URL.String())
				body, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"details":"Email sent successfully. Mailgun response: ok"}`, string(body))
				return jsonResponse(http.StatusOK, `{"id":"`+id.String()+`","state":"succeeded"}`), nil
			})

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		email, err := svc.Succeed(context.Background(), id, "Email sent successfully. Mailgun response: ok")
		require.NoError(t, err)
		assert.Equal(t, domain.ScheduledEmailStatusSucceeded, email.State)
	})

	t.Run("non-success status surfaces as HTTPStatusError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			Return(jsonResponse(http.StatusConflict, `{"detail":"already locked"}`), nil)

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		_, err := svc.Lock(context.Background(), id)
		var statusErr *domain.HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "already locked")
	})

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			Do(gomock.Any()).
			DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "http://api.local/v2/scheduledemail/"+id.String(), req.URL.String())
				return jsonResponse(http.StatusOK, `{"id":"`+id.String()+`","state":"scheduled"}`), nil
			})

		svc := NewScheduledEmailService("http://api.local", httpClient, newStaticTokenProvider(ctrl), 10, logger.NewMockLogger())

		email, err := svc.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, email.ID)
	})
}
