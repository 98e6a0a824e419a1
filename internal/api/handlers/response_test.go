package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatsDTO struct {
	TotalVacancies int    `json:"totalVacancies" validate:"required,min=1"`
	Day            string `json:"day" validate:"omitempty,oneof=monday tuesday"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"totalVacancies":10}`},
		{name: "empty body", body: ``, wantErr: true},
		{name: "unknown field", body: `{"seats":10}`, wantErr: true},
		{name: "malformed", body: `{"totalVacancies":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dto seatsDTO
			err := DecodeJSON(r, &dto)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, dto.TotalVacancies)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(seatsDTO{TotalVacancies: 20}))

	err := Validate(seatsDTO{TotalVacancies: -1, Day: "sunday"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"totalVacancies": "min=1",
		"day":            "oneof=monday tuesday",
	}, ValidationDetails(err))
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, "bad", Validate(seatsDTO{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bad", body.Message)
	assert.Equal(t, "required", body.Details["totalVacancies"])
}

func TestRespondFile(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFile(rec, "text/plain", "a.txt", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="a.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "abc", rec.Body.String())
}
