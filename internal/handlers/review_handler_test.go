package handlers_test

import (
	"net/http"
	"testing"

	"wordvault/internal/handlers"
	"wordvault/internal/model"
	svc_mocks "wordvault/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewHandler_GetImmediate(t *testing.T) {
	expected := []*model.ReviewWordResponse{
		{WordID: uuid.New(), Text: "persist", Meaning: "to continue firmly", Stage: 0},
		{WordID: uuid.New(), Text: "vault", Meaning: "a secure room", Stage: 0},
	}

	tests := []struct {
		name           string
		setupMock      func(m *svc_mocks.ReviewService)
		withUser       bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "returns the stage-zero words",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetImmediateReviewWords", mock.Anything, testUserID).Return(expected, nil).Once()
			},
			withUser:       true,
			expectedStatus: http.StatusOK,
			expectedBody:   `"text":"persist"`,
		},
		{
			name: "nil from the service becomes an empty array",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetImmediateReviewWords", mock.Anything, testUserID).Return(nil, nil).Once()
			},
			withUser:       true,
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "service failure maps to 500",
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetImmediateReviewWords", mock.Anything, testUserID).
					Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "boom", "", model.ErrInternalServer)).Once()
			},
			withUser:       true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `INTERNAL_SERVER_ERROR`,
		},
		{
			name:           "missing identity maps to 500",
			setupMock:      func(m *svc_mocks.ReviewService) {},
			withUser:       false,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `INTERNAL_SERVER_ERROR`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewReviewService(t)
			tt.setupMock(mockService)
			handler := handlers.NewReviewHandler(mockService)

			req := newJSONRequest(t, http.MethodGet, "/reviews/immediate", nil)
			if tt.withUser {
				req = req.WithContext(ctxWithUser(testUserID))
			}
			rr := doRequest(handler.GetImmediate, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestReviewHandler_GetCumulativeCount(t *testing.T) {
	mockService := svc_mocks.NewReviewService(t)
	mockService.On("GetCumulativeReviewCount", mock.Anything, testUserID).Return(int64(7), nil).Once()
	handler := handlers.NewReviewHandler(mockService)

	req := newJSONRequest(t, http.MethodGet, "/reviews/cumulative/count", nil)
	req = req.WithContext(ctxWithUser(testUserID))
	rr := doRequest(handler.GetCumulativeCount, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":7}`, rr.Body.String())
}

func TestReviewHandler_SubmitAnswer(t *testing.T) {
	wordID := uuid.New()
	correct := true

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svc_mocks.ReviewService)
		expectedStatus int
	}{
		{
			name: "correct answer",
			body: model.SubmitAnswerRequest{WordID: wordID, IsCorrect: &correct},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitAnswer", mock.Anything, testUserID, wordID, true).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "missing is_correct is rejected",
			body:           `{"word_id":"` + wordID.String() + `"}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json is rejected",
			body:           `{"word_id":`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown word maps to 404",
			body: model.SubmitAnswerRequest{WordID: wordID, IsCorrect: &correct},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitAnswer", mock.Anything, testUserID, wordID, true).
					Return(model.NewAppError("WORD_NOT_FOUND", "missing", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewReviewService(t)
			tt.setupMock(mockService)
			handler := handlers.NewReviewHandler(mockService)

			req := newJSONRequest(t, http.MethodPost, "/reviews/answers", tt.body)
			req = req.WithContext(ctxWithUser(testUserID))
			rr := doRequest(handler.SubmitAnswer, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
