package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
)

const testUserID = "6650f1c2a1b2c3d4e5f60718"

// newRequest builds a request, as the auth middleware would pass it on when
// userID is set
func newRequest(t *testing.T, method, target string, body interface{}, userID string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = bytes.NewBufferString(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(b)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req = req.WithContext(api.WithUserID(req.Context(), userID))
	}
	return req
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
