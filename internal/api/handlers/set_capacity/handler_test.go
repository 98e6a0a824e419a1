package set_capacity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseService/internal/service/capacity"
	"github.com/m04kA/SMC-CourseService/internal/service/capacity/models"
	"github.com/m04kA/SMC-CourseService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SetCapacity(ctx context.Context, slotID string, total int) (*models.CapacityResponse, error) {
	args := m.Called(ctx, slotID, total)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CapacityResponse), args.Error(1)
}

func serve(svc CapacityService, slotID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/time-slots/{slotId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/time-slots/"+slotID, strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockService)
	svc.On("SetCapacity", mock.Anything, "mon-08-09", 25).
		Return(&models.CapacityResponse{SlotID: "mon-08-09", Day: "monday", DisplayTime: "08:00 - 09:00", TotalVacancies: 25}, nil)

	rec := serve(svc, "mon-08-09", `{"totalVacancies":25}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CapacityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 25, body.TotalVacancies)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		slotID     string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed body", slotID: "mon-08-09", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "zero seats", slotID: "mon-08-09", body: `{"totalVacancies":0}`, wantStatus: http.StatusBadRequest},
		{name: "negative seats", slotID: "mon-08-09", body: `{"totalVacancies":-3}`, wantStatus: http.StatusBadRequest},
		{name: "unknown slot", slotID: "sun-08-09", body: `{"totalVacancies":5}`, serviceErr: capacity.ErrUnknownSlot, wantStatus: http.StatusNotFound},
		{name: "invalid capacity", slotID: "mon-08-09", body: `{"totalVacancies":5}`, serviceErr: fmt.Errorf("%w: too many", capacity.ErrInvalidCapacity), wantStatus: http.StatusBadRequest},
		{name: "internal", slotID: "mon-08-09", body: `{"totalVacancies":5}`, serviceErr: capacity.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.serviceErr != nil {
				svc.On("SetCapacity", mock.Anything, tt.slotID, 5).Return(nil, tt.serviceErr)
			}

			rec := serve(svc, tt.slotID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
