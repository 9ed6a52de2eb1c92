package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbportal/portal/internal/api/response"
	"github.com/nbportal/portal/internal/config"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvApplicationMode, "TESTING")

	templateDir := t.TempDir()
	notebookDir := filepath.Join(templateDir, "notebooks")
	require.NoError(t, os.MkdirAll(notebookDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templateDir, "notebooks.html"),
		[]byte(`{{range .Notebooks}}{{.}} {{end}}`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(notebookDir, "demo.html"),
		[]byte("<html>demo</html>"), 0o644))

	application, err := New(WithConfig(config.Overlay{
		Paths: config.PathsOverlay{
			TemplateDir:    config.String(templateDir),
			NotebookSubdir: config.String("notebooks"),
		},
	}))
	require.NoError(t, err)
	return application
}

func TestFactoryBuildsWithoutDatabaseInTestingMode(t *testing.T) {
	application := newTestApp(t)

	require.Nil(t, application.DB(), "testing mode must disable the database extension")
	require.NotNil(t, application.Mailer())
	require.False(t, application.Mailer().Enabled())
	require.Equal(t, config.ModeTesting, application.Config().Mode)
}

func TestFactoryServesHealth(t *testing.T) {
	application := newTestApp(t)

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "OK", env.Message)
	require.Equal(t, http.StatusOK, env.Code)
}

func TestFactoryServesNotebooks(t *testing.T) {
	application := newTestApp(t)

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notebooks", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "demo")

	rec = httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notebooks/demo", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notebooks/ghost", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, http.StatusNotFound, env.Code)
}

func TestFactoryUnknownRouteIsJSON404(t *testing.T) {
	application := newTestApp(t)

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, http.StatusNotFound, env.Code)
}

func TestInitDBWithoutDatabaseFails(t *testing.T) {
	application := newTestApp(t)
	require.Error(t, application.InitDB(context.Background()))
}
