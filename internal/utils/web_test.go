package utils

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
)

func TestDecodeValidate(t *testing.T) {
	type testStruct struct {
		Field1 string `json:"field1" validate:"required"`
		Field2 int    `json:"field2"`
	}

	tests := []struct {
		name        string
		requestBody string
		expectedErr error
	}{
		{
			name:        "valid json and validation",
			requestBody: `{"field1": "value", "field2": 123}`,
			expectedErr: nil,
		},
		{
			name:        "optional field may be absent",
			requestBody: `{"field1": "value"}`,
			expectedErr: nil,
		},
		{
			name:        "invalid json",
			requestBody: `{"field1": "value", "field2": 123`, // Missing closing brace
			expectedErr: domain.ErrInvalidRequestBody,
		},
		{
			name:        "missing required field",
			requestBody: `{"field2": 123}`,
			expectedErr: domain.ErrMissingRequiredFields,
		},
		{
			name:        "empty body",
			requestBody: "",
			expectedErr: domain.ErrInvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(tt.requestBody)))

			err := DecodeValidate(req.Body, &testStruct{})

			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("classified error keeps its code and status", func(t *testing.T) {
		rr := httptest.NewRecorder()

		WriteError(rr, domain.ErrFeedbackBoardNotFound)

		assert.Equal(t, 404, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "FeedbackBoardNotFound", body.Code)
		assert.Equal(t, domain.ErrFeedbackBoardNotFound.Message, body.Message)
	})

	t.Run("unclassified error is masked", func(t *testing.T) {
		rr := httptest.NewRecorder()

		WriteError(rr, assert.AnError)

		assert.Equal(t, 500, rr.Code)

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Internal", body.Code)
		assert.Equal(t, "internal error", body.Message)
	})
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, 201, map[string]string{"hello": "world"})

	assert.Equal(t, 201, rr.Code)
	assert.JSONEq(t, `{"hello":"world"}`, rr.Body.String())
}
