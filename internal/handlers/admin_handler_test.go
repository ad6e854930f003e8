package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holi/give-server/internal/api"
	"github.com/holi/give-server/internal/config"
	"github.com/holi/give-server/internal/square"
)

func postRegister(proc *fakeProcessor, headers map[string]string) *httptest.ResponseRecorder {
	r := newTestRouter(proc)
	req := httptest.NewRequest(http.MethodPost, "/api/register-apple-domain", nil)
	req.Host = "give.example.org"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDomainRequiresAdminKey(t *testing.T) {
	proc := &fakeProcessor{}

	w := postRegister(proc, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postRegister(proc, map[string]string{"x-admin-key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Equal(t, 0, proc.registerCalls, "unauthorized calls must not reach the processor")
}

func TestRegisterDomainDisabledWithoutConfiguredKey(t *testing.T) {
	proc := &fakeProcessor{}
	r := api.NewRouter(&config.Config{SquareLocationID: "LOC1"}, proc)

	req := httptest.NewRequest(http.MethodPost, "/api/register-apple-domain", nil)
	req.Header.Set("x-admin-key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, proc.registerCalls)
}

func TestRegisterDomainSuccess(t *testing.T) {
	var gotDomain string
	proc := &fakeProcessor{
		registerFunc: func(ctx context.Context, domain string) (bool, error) {
			gotDomain = domain
			return false, nil
		},
	}

	w := postRegister(proc, map[string]string{"x-admin-key": "sekret"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "give.example.org", gotDomain)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "give.example.org", resp["domain"])
	_, hasAlready := resp["already"]
	assert.False(t, hasAlready)
}

func TestRegisterDomainAlreadyRegisteredIsSuccess(t *testing.T) {
	proc := &fakeProcessor{
		registerFunc: func(ctx context.Context, domain string) (bool, error) { return true, nil },
	}

	w := postRegister(proc, map[string]string{"x-admin-key": "sekret"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, true, resp["already"])
}

func TestRegisterDomainPrefersForwardedHost(t *testing.T) {
	var gotDomain string
	proc := &fakeProcessor{
		registerFunc: func(ctx context.Context, domain string) (bool, error) {
			gotDomain = domain
			return false, nil
		},
	}

	w := postRegister(proc, map[string]string{
		"x-admin-key":      "sekret",
		"X-Forwarded-Host": "Give.Example.COM:8443, internal-lb",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "give.example.com", gotDomain, "forwarded host wins, port stripped, lowercased")
}

func TestRegisterDomainProcessorFailureSurfacesDetail(t *testing.T) {
	proc := &fakeProcessor{
		registerFunc: func(ctx context.Context, domain string) (bool, error) {
			return false, &square.RequestError{
				StatusCode: http.StatusForbidden,
				Errors:     []square.APIError{{Detail: "Insufficient permissions to register domain."}},
			}
		},
	}

	w := postRegister(proc, map[string]string{"x-admin-key": "sekret"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "Insufficient permissions to register domain.", resp["error"])
}

func TestRegisterDomainUnexpectedFailureIsGeneric(t *testing.T) {
	proc := &fakeProcessor{
		registerFunc: func(ctx context.Context, domain string) (bool, error) {
			return false, errors.New("dial tcp: connection refused to 10.0.0.7")
		},
	}

	w := postRegister(proc, map[string]string{"x-admin-key": "sekret"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "Apple Pay register error", resp["error"], "internal detail must never leak")
}
