package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gildedthread/storefront-api/internal/utils/response"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return &resp
}
