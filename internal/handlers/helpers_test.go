package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wordvault/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-test-1"

// ctxWithUser mimics what the auth middleware puts on the request.
func ctxWithUser(userID string) context.Context {
	return context.WithValue(context.Background(), model.UserIDKey, userID)
}

func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// ctxWithChiURLParams injects route parameters the way chi's router would.
func ctxWithChiURLParams(ctx context.Context, pairs ...string) context.Context {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func doRequest(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
