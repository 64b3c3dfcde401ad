// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/regulatrix/early-access/internal/adapter"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/mock"
	"github.com/regulatrix/early-access/internal/validators"
	"github.com/regulatrix/early-access/models"
)

// newTestFormSvc wires a formService with the real validator and mocked
// collaborators.
func newTestFormSvc(t *testing.T, ctrl *gomock.Controller) (*formService, *mock.MockEarlyAccessService, *mock.MockTracker) {
	t.Helper()
	earlyAccess := mock.NewMockEarlyAccessService(ctrl)
	tracker := mock.NewMockTracker(ctrl)

	svc := NewFormService(validators.NewEarlyAccessValidator(), earlyAccess, tracker, logger.Nop()).(*formService)
	return svc, earlyAccess, tracker
}

func janeInput() models.FormInput {
	return models.FormInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "Regulatrix",
		Website: "",
		Role:    models.RoleMerchant,
	}
}

// ── Client-side validation ──────────────────────────────────────────────────

func TestFormService_Submit_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, earlyAccess, tracker := newTestFormSvc(t, ctrl)

	in := janeInput()
	in.Email = "not-an-email"

	tracker.EXPECT().Track(models.EventEarlyAccessSubmitFailure, map[string]any{"reason": ReasonClientValidation})
	earlyAccess.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	out := svc.Submit(context.Background(), in)

	assert.Equal(t, models.FormStateError, out.State)
	assert.Equal(t, MsgCorrectFields, out.Message)
	assert.Equal(t, map[string]string{validators.FieldEmail: validators.MsgInvalidEmail}, out.FieldErrors)
	assert.Empty(t, out.RequestID)
}

func TestFormService_Submit_ValidatorBroken(t *testing.T) {
	ctrl := gomock.NewController(t)
	earlyAccess := mock.NewMockEarlyAccessService(ctrl)
	tracker := mock.NewMockTracker(ctrl)
	validator := mock.NewMockValidator(ctrl)
	svc := NewFormService(validator, earlyAccess, tracker, logger.Nop())

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validators.ErrUnsupportedType)
	tracker.EXPECT().Track(models.EventEarlyAccessSubmitFailure, map[string]any{"reason": MsgGeneric})

	out := svc.Submit(context.Background(), janeInput())

	assert.Equal(t, models.FormStateError, out.State)
	assert.Equal(t, MsgGeneric, out.Message)
	assert.Nil(t, out.FieldErrors)
}

// ── Submission ──────────────────────────────────────────────────────────────

func TestFormService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, earlyAccess, tracker := newTestFormSvc(t, ctrl)
	ctx := context.Background()

	in := janeInput()
	in.Name = "  Jane Doe  "

	gomock.InOrder(
		tracker.EXPECT().Track(models.EventEarlyAccessSubmitAttempt, map[string]any{"role": "merchant"}),
		earlyAccess.EXPECT().Submit(ctx, validators.NormalizeEarlyAccess(in)).
			Return(models.EarlyAccessResponse{Success: true, Message: strPtr("Saved"), RequestID: strPtr("req-100")}, nil),
		tracker.EXPECT().Track(models.EventEarlyAccessSubmitSuccess, map[string]any{"request_id": "req-100"}),
	)

	out := svc.Submit(ctx, in)

	assert.Equal(t, models.SubmitOutcome{State: models.FormStateSuccess, Message: "Saved", RequestID: "req-100"}, out)
}

func TestFormService_Submit_SuccessWithoutMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, earlyAccess, tracker := newTestFormSvc(t, ctrl)

	tracker.EXPECT().Track(models.EventEarlyAccessSubmitAttempt, gomock.Any())
	earlyAccess.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.EarlyAccessResponse{Success: true}, nil)
	tracker.EXPECT().Track(models.EventEarlyAccessSubmitSuccess, map[string]any{})

	out := svc.Submit(context.Background(), janeInput())

	assert.Equal(t, models.FormStateSuccess, out.State)
	assert.Equal(t, MsgRequestReceived, out.Message)
}

func TestFormService_Submit_RejectedEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		resp       models.EarlyAccessResponse
		wantMsg    string
		wantReason map[string]any
	}{
		{
			name:       "with error text",
			resp:       models.EarlyAccessResponse{Success: false, Error: strPtr("Duplicate lead"), RequestID: strPtr("req-7")},
			wantMsg:    "Duplicate lead",
			wantReason: map[string]any{"reason": "Duplicate lead", "request_id": "req-7"},
		},
		{
			name:       "without error text",
			resp:       models.EarlyAccessResponse{Success: false},
			wantMsg:    MsgSubmitFailed,
			wantReason: map[string]any{"reason": ReasonUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, earlyAccess, tracker := newTestFormSvc(t, ctrl)

			tracker.EXPECT().Track(models.EventEarlyAccessSubmitAttempt, gomock.Any())
			earlyAccess.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(tt.resp, nil)
			tracker.EXPECT().Track(models.EventEarlyAccessSubmitFailure, tt.wantReason)

			out := svc.Submit(context.Background(), janeInput())

			assert.Equal(t, models.FormStateError, out.State)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, tt.resp.RequestIDValue(), out.RequestID)
		})
	}
}

func TestFormService_Submit_TransportErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantMsg    string
		wantReason map[string]any
	}{
		{
			name:       "server error",
			err:        &adapter.APIError{Code: "HTTP_500", HTTPStatus: http.StatusInternalServerError, RequestID: "req-500"},
			wantMsg:    MsgServerError,
			wantReason: map[string]any{"reason": MsgServerError, "request_id": "req-500"},
		},
		{
			name:       "timeout",
			err:        &adapter.APIError{Code: adapter.CodeTimeout, HTTPStatus: http.StatusRequestTimeout},
			wantMsg:    MsgConnection,
			wantReason: map[string]any{"reason": MsgConnection},
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantMsg:    MsgGeneric,
			wantReason: map[string]any{"reason": MsgGeneric},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, earlyAccess, tracker := newTestFormSvc(t, ctrl)

			tracker.EXPECT().Track(models.EventEarlyAccessSubmitAttempt, gomock.Any())
			earlyAccess.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.EarlyAccessResponse{}, tt.err)
			tracker.EXPECT().Track(models.EventEarlyAccessSubmitFailure, tt.wantReason)

			out := svc.Submit(context.Background(), janeInput())

			assert.Equal(t, models.FormStateError, out.State)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, RequestIDFromError(tt.err), out.RequestID)
		})
	}
}

// ── In-flight guard ─────────────────────────────────────────────────────────

func TestFormService_Submit_SingleInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, earlyAccess, tracker := newTestFormSvc(t, ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})

	tracker.EXPECT().Track(gomock.Any(), gomock.Any()).AnyTimes()
	earlyAccess.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.EarlyAccessRequest) (models.EarlyAccessResponse, error) {
			close(entered)
			<-release
			return models.EarlyAccessResponse{Success: true}, nil
		},
	).Times(1)

	var wg sync.WaitGroup
	var first models.SubmitOutcome
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = svc.Submit(context.Background(), janeInput())
	}()

	<-entered
	second := svc.Submit(context.Background(), janeInput())
	close(release)
	wg.Wait()

	assert.Equal(t, models.FormStateSubmitting, second.State)
	assert.Equal(t, MsgSubmitInFlight, second.Message)
	assert.Equal(t, models.FormStateSuccess, first.State)
	require.False(t, svc.inFlight.Load())
}
