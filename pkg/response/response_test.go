package response

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"stellar-payout/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK_PassesPayloadThrough(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, map[string]interface{}{"transactions": []string{}, "total": 0})

	assert.Equal(t, 200, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "transactions")
	assert.NotContains(t, body, "data", "legacy payloads must not be wrapped")
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Message(c, "History cleared")

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"History cleared"}`, w.Body.String())
}

func TestError_AppErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := apperror.Payment("GDEST", fmt.Errorf("tx_failed")).
		WithDetails(map[string]interface{}{"result_codes": "op_underfunded"})
	Error(c, err)

	assert.Equal(t, 502, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "payment submission failed for GDEST", body.Error)
	assert.NotNil(t, body.Details)
}

func TestError_ValidationStatus(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, apperror.Validation("receivers must be a positive integer"))

	assert.Equal(t, 400, w.Code)
}

func TestError_UnknownErrorIs500(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, fmt.Errorf("plain error"))

	assert.Equal(t, 500, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Nil(t, body.Details)
}
