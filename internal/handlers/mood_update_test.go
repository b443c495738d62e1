package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/sbilibin2017/mood-journal/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateMoodHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	moodID := uuid.New()
	day := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

	updated := &models.MoodDB{
		MoodID:    moodID,
		UserID:    userID,
		Mood:      models.MoodExcited,
		Note:      strPtr("promoted"),
		Date:      day,
		CreatedAt: day,
		UpdatedAt: day,
	}

	tests := []struct {
		name         string
		id           string
		reqBody      UpdateMoodRequest
		rawBody      string
		noAuth       bool
		mockSetup    func(m *MockMoodUpdater)
		expectedCode int
	}{
		{
			name: "update all fields",
			id:   moodID.String(),
			reqBody: UpdateMoodRequest{
				Mood: strPtr("excited"),
				Note: strPtr("promoted"),
				Date: strPtr("2025-10-21"),
			},
			mockSetup: func(m *MockMoodUpdater) {
				category := models.MoodExcited
				m.EXPECT().
					Update(gomock.Any(), userID, moodID, models.MoodUpdate{
						Mood: &category,
						Note: strPtr("promoted"),
						Date: &day,
					}).
					Return(updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "partial update keeps omitted fields",
			id:      moodID.String(),
			reqBody: UpdateMoodRequest{Note: strPtr("promoted")},
			mockSetup: func(m *MockMoodUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, moodID, models.MoodUpdate{Note: strPtr("promoted")}).
					Return(updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unauthorized",
			id:           moodID.String(),
			noAuth:       true,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed id",
			id:           "42",
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid json",
			id:           moodID.String(),
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown category",
			id:           moodID.String(),
			reqBody:      UpdateMoodRequest{Mood: strPtr("furious")},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid date",
			id:           moodID.String(),
			reqBody:      UpdateMoodRequest{Date: strPtr("21.10.2025")},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "not found",
			id:      moodID.String(),
			reqBody: UpdateMoodRequest{Note: strPtr("promoted")},
			mockSetup: func(m *MockMoodUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, moodID, models.MoodUpdate{Note: strPtr("promoted")}).
					Return(nil, services.ErrMoodNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "internal server error",
			id:      moodID.String(),
			reqBody: UpdateMoodRequest{Note: strPtr("promoted")},
			mockSetup: func(m *MockMoodUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, moodID, models.MoodUpdate{Note: strPtr("promoted")}).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMoodUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateMoodHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody != "" {
				body = bytes.NewBufferString(tt.rawBody)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := httptest.NewRequest(http.MethodPut, "/moods/"+tt.id, body)
			if !tt.noAuth {
				req = authedRequest(req, userID)
			}
			req = withURLParam(req, "id", tt.id)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp struct {
					OK   bool        `json:"ok"`
					Data MoodPayload `json:"data"`
				}
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.True(t, resp.OK)
				assert.Equal(t, "excited", resp.Data.Mood)
				assert.Equal(t, "2025-10-21", resp.Data.Date)
			}
		})
	}
}
