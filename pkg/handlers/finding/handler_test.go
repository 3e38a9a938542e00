package finding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/instance-isolator/pkg/models/api"
	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIsolator struct {
	mock.Mock
}

func (m *mockIsolator) Handle(ctx context.Context, ev domain.IncidentEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

const validEvent = `{"region": "us-east-1", "detail": {"resource": {"instanceDetails": {"instanceId": "i-0abc"}}}}`

func TestIsolateFinding(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockIsolator)
		expectedStatus int
		expectedBody   api.IsolationResponse
	}{
		{
			name: "isolated",
			body: validEvent,
			setupMock: func(m *mockIsolator) {
				m.On("Handle", mock.Anything, domain.IncidentEvent{Region: "us-east-1", InstanceID: "i-0abc"}).Return(nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   api.IsolationResponse{InstanceID: "i-0abc", Region: "us-east-1", Status: "isolated"},
		},
		{
			name: "isolation failed",
			body: validEvent,
			setupMock: func(m *mockIsolator) {
				m.On("Handle", mock.Anything, mock.Anything).Return(errors.New("InvalidGroup.NotFound"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody: api.IsolationResponse{
				InstanceID: "i-0abc",
				Region:     "us-east-1",
				Status:     "failed",
				Error:      "InvalidGroup.NotFound",
			},
		},
		{
			name:           "missing instance id",
			body:           `{"region": "us-east-1", "detail": {}}`,
			setupMock:      func(*mockIsolator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: api.IsolationResponse{
				Status: "rejected",
				Error:  "invalid incident event: missing detail.resource.instanceDetails.instanceId",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso := new(mockIsolator)
			tt.setupMock(iso)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/findings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			NewHandler(iso).IsolateFinding(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got api.IsolationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
			iso.AssertExpectations(t)
		})
	}
}

func TestIsolateFinding_MalformedJSON(t *testing.T) {
	iso := new(mockIsolator)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/findings", strings.NewReader(`{"region":`))
	rec := httptest.NewRecorder()

	NewHandler(iso).IsolateFinding(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to decode finding event")
	iso.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
