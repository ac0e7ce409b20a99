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

func TestLearningHandler_GetTodayBatch(t *testing.T) {
	batch := &model.LearningBatchResponse{
		Words: []model.Word{
			{WordID: uuid.New(), Text: "persist", Meaning: "to continue firmly"},
			{WordID: uuid.New(), Text: "vault", Meaning: "a secure room"},
		},
		BatchSize: 2,
	}

	tests := []struct {
		name           string
		setupMock      func(m *svc_mocks.LearningService)
		withUser       bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "returns the selected batch",
			setupMock: func(m *svc_mocks.LearningService) {
				m.On("SelectTodayBatch", mock.Anything, testUserID).Return(batch, nil).Once()
			},
			withUser:       true,
			expectedStatus: http.StatusOK,
			expectedBody:   `"batch_size":2`,
		},
		{
			name: "service failure maps to 500",
			setupMock: func(m *svc_mocks.LearningService) {
				m.On("SelectTodayBatch", mock.Anything, testUserID).
					Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "boom", "", model.ErrInternalServer)).Once()
			},
			withUser:       true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `INTERNAL_SERVER_ERROR`,
		},
		{
			name:           "missing identity maps to 500",
			setupMock:      func(m *svc_mocks.LearningService) {},
			withUser:       false,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `INTERNAL_SERVER_ERROR`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLearning := svc_mocks.NewLearningService(t)
			tt.setupMock(mockLearning)
			handler := handlers.NewLearningHandler(mockLearning, svc_mocks.NewQuizService(t))

			req := newJSONRequest(t, http.MethodGet, "/learning/batch", nil)
			if tt.withUser {
				req = req.WithContext(ctxWithUser(testUserID))
			}
			rr := doRequest(handler.GetTodayBatch, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestLearningHandler_Complete(t *testing.T) {
	wordID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svc_mocks.LearningService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "finishes the session",
			body: model.CompleteLearningRequest{WordIDs: []uuid.UUID{wordID}},
			setupMock: func(m *svc_mocks.LearningService) {
				m.On("CompleteLearning", mock.Anything, testUserID, []uuid.UUID{wordID}).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "empty word list is rejected",
			body:           map[string]interface{}{"word_ids": []string{}},
			setupMock:      func(m *svc_mocks.LearningService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `VALIDATION_ERROR`,
		},
		{
			name:           "malformed json is rejected",
			body:           `{"word_ids":`,
			setupMock:      func(m *svc_mocks.LearningService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown word maps to 404",
			body: model.CompleteLearningRequest{WordIDs: []uuid.UUID{wordID}},
			setupMock: func(m *svc_mocks.LearningService) {
				m.On("CompleteLearning", mock.Anything, testUserID, []uuid.UUID{wordID}).
					Return(model.NewAppError("WORD_NOT_FOUND", "A word in the batch does not exist.", "word_ids", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `WORD_NOT_FOUND`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLearning := svc_mocks.NewLearningService(t)
			tt.setupMock(mockLearning)
			handler := handlers.NewLearningHandler(mockLearning, svc_mocks.NewQuizService(t))

			req := newJSONRequest(t, http.MethodPost, "/learning/complete", tt.body)
			req = req.WithContext(ctxWithUser(testUserID))
			rr := doRequest(handler.Complete, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestLearningHandler_BuildQuiz(t *testing.T) {
	wordID := uuid.New()
	questions := []model.QuizQuestion{
		{WordID: wordID, Text: "persist", Options: []string{"a", "b", "c", "to continue firmly"}, CorrectIndex: 3},
	}

	mockQuiz := svc_mocks.NewQuizService(t)
	mockQuiz.On("BuildQuestions", mock.Anything, testUserID, []uuid.UUID{wordID}).Return(questions, nil).Once()
	handler := handlers.NewLearningHandler(svc_mocks.NewLearningService(t), mockQuiz)

	req := newJSONRequest(t, http.MethodPost, "/learning/quiz", model.CompleteLearningRequest{WordIDs: []uuid.UUID{wordID}})
	req = req.WithContext(ctxWithUser(testUserID))
	rr := doRequest(handler.BuildQuiz, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"correct_index":3`)
}

func TestLearningHandler_BuildSessionQuiz(t *testing.T) {
	wordID := uuid.New()
	resp := &model.QuizSessionResponse{
		Questions: []model.QuizQuestion{
			{WordID: wordID, Text: "persist", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		},
		BatchSize: 1,
		Cycles:    3,
	}

	mockQuiz := svc_mocks.NewQuizService(t)
	mockQuiz.On("BuildSessionQuestions", mock.Anything, testUserID, []uuid.UUID{wordID}).Return(resp, nil).Once()
	handler := handlers.NewLearningHandler(svc_mocks.NewLearningService(t), mockQuiz)

	req := newJSONRequest(t, http.MethodPost, "/learning/session", model.CompleteLearningRequest{WordIDs: []uuid.UUID{wordID}})
	req = req.WithContext(ctxWithUser(testUserID))
	rr := doRequest(handler.BuildSessionQuiz, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"cycles":3`)
}
