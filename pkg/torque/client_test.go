package torque

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(ClientOptions{
		APIToken:   "test-token",
		APIURL:     server.URL,
		HTTPClient: server.Client(),
		LookupEnv:  noEnv,
	})
	require.NoError(t, err)
	return client
}

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
		wantErr  bool
	}{
		{name: "explicit value used", explicit: "abc", env: "xyz", want: "abc"},
		{name: "env fallback", explicit: "", env: "xyz", want: "xyz"},
		{name: "explicit wins over env", explicit: "abc", env: "", want: "abc"},
		{name: "neither set", explicit: "", env: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) string {
				require.Equal(t, EnvAPIToken, key)
				return tt.env
			}

			got, err := ResolveToken(tt.explicit, lookup)
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigurationError
				assert.True(t, errors.As(err, &cfgErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_MissingToken(t *testing.T) {
	client, err := NewClient(ClientOptions{LookupEnv: noEnv})
	require.Error(t, err)
	assert.Nil(t, client)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Message, "TORQUE_API_TOKEN")
}

func TestNewClient_APIURLDefaults(t *testing.T) {
	client, err := NewClient(ClientOptions{APIToken: "tok", LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, client.APIURL())
}

func TestNewClient_StripsTrailingSlashes(t *testing.T) {
	client, err := NewClient(ClientOptions{
		APIToken:  "tok",
		APIURL:    "https://portal.example.com///",
		LookupEnv: noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com", client.APIURL())
}

func TestRunAction_Success(t *testing.T) {
	target := Target{
		Space:         "demo",
		Environment:   "env1",
		GrainFullname: "web",
		Resource:      "aws_instance.a",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/spaces/demo/environments/env1/web/aws_instance.a/run_action/restart", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"force": false}`, string(body))

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status": "ok"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	result, err := client.RunAction(context.Background(), target, "restart", false)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.False(t, result.Simulated)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, result.Response)
	assert.Nil(t, result.Outputs)
}

func TestRunAction_ForceFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"force": true}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.RunAction(context.Background(), Target{}, "restart", true)
	require.NoError(t, err)
}

func TestRunAction_StatusClassification(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{status: 200},
		{status: 201},
		{status: 202, wantErr: true}, // only the workflow endpoint accepts 202
		{status: 400, wantErr: true},
		{status: 401, wantErr: true},
		{status: 404, wantErr: true},
		{status: 500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(t, server)
			result, err := client.RunAction(context.Background(), Target{}, "restart", false)

			if tt.wantErr {
				require.Error(t, err)
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.status, apiErr.StatusCode)
				assert.Contains(t, err.Error(), fmt.Sprintf("API call failed with status %d", tt.status))
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Changed)
		})
	}
}

func TestRunAction_NonJSONSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	client := newTestClient(t, server)
	result, err := client.RunAction(context.Background(), Target{}, "restart", false)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"status":  "success",
		"message": "Action executed successfully",
	}, result.Response)
}

func TestRunAction_ErrorMessageMined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "not found"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.RunAction(context.Background(), Target{
		Space:         "demo",
		Environment:   "env1",
		GrainFullname: "web",
		Resource:      "aws_instance.a",
	}, "restart", false)

	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestRunAction_ErrorBodyUnparseable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "<html>gateway exploded</html>")
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.RunAction(context.Background(), Target{}, "restart", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API call failed with status 500 and message:")
}

func TestRunAction_ErrorBodyWithoutMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error_code": 42}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.RunAction(context.Background(), Target{}, "restart", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API call failed with status 400 and message:")
}

func TestRunAction_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, server)
	server.Close()

	_, err := client.RunAction(context.Background(), Target{}, "restart", false)
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Contains(t, err.Error(), "Error making API call:")
}

func TestRunAction_DryRun(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{
		APIToken:   "test-token",
		APIURL:     server.URL,
		HTTPClient: server.Client(),
		LookupEnv:  noEnv,
		DryRun:     true,
	})
	require.NoError(t, err)

	result, err := client.RunAction(context.Background(), Target{}, "restart", false)
	require.NoError(t, err)

	assert.Zero(t, calls, "dry run must not touch the network")
	assert.True(t, result.Changed)
	assert.True(t, result.Simulated)
	assert.Equal(t, "check_mode", result.Response["status"])
}

func TestRunAction_ResponseIsJSONArray(t *testing.T) {
	// A 2xx body that parses but is not an object gets the synthesized
	// payload, same as an unparseable body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		require.NoError(t, json.NewEncoder(w).Encode([]string{"a", "b"}))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	result, err := client.RunAction(context.Background(), Target{}, "restart", false)
	require.NoError(t, err)
	assert.Equal(t, "success", result.Response["status"])
}
