package supabase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/infrastructure/supabase"
	"github.com/jhoicas/chipaflow-api/pkg/config"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/users", r.URL.Path)
		assert.Equal(t, "count", r.URL.Query().Get("select"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func client(url string) *supabase.Client {
	return supabase.NewClient(config.SupabaseConfig{URL: url + "/", AnonKey: "anon-key", TimeoutSeconds: 2})
}

func TestPing_OK(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[{"count":3}]`)
	assert.NoError(t, client(srv.URL).Ping(context.Background()))
}

func TestPing_SinFilasEsConexionValida(t *testing.T) {
	srv := newServer(t, http.StatusNotAcceptable, `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`)
	assert.NoError(t, client(srv.URL).Ping(context.Background()))
}

func TestPing_ErrorServidor(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"code":"XX000","message":"boom"}`)
	err := client(srv.URL).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=500")
}

func TestPing_Inalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	assert.Error(t, client(url).Ping(context.Background()))
}
