package action

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		result interface{ MarshalJSON() ([]byte, error) }
		want   string
	}{
		{
			name:   "payload under key",
			result: Ok("message", "Category deleted successfully."),
			want:   `{"success":true,"message":"Category deleted successfully."}`,
		},
		{
			name:   "no payload key",
			result: Ok("", struct{}{}),
			want:   `{"success":true}`,
		},
		{
			name:   "failure",
			result: Err[string](http.StatusNotFound, "NOT_FOUND", "Product not found."),
			want:   `{"success":false,"error":"Product not found."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := tt.result.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestResult_Status(t *testing.T) {
	assert.Equal(t, http.StatusOK, Ok("k", 1).Status())
	assert.Equal(t, http.StatusCreated, Created("k", 1).Status())
	assert.Equal(t, http.StatusInternalServerError, Result[int]{}.Status())

	failed := Err[int](http.StatusConflict, "CONFLICT", "dup")
	assert.False(t, failed.Success())
	assert.Equal(t, http.StatusConflict, failed.Status())
	assert.Equal(t, "CONFLICT", failed.Code())
	assert.Equal(t, "dup", failed.Message())
}
