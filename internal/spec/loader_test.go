package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("json document", func(t *testing.T) {
		path := writeSpec(t, "openapi.json", `{
			"openapi": "3.0.3",
			"info": {"title": "Farm API", "version": "1.0.0"},
			"paths": {"/users": {"get": {"summary": "List users"}}}
		}`)

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Farm API", doc.Info.Title)
		require.Contains(t, doc.Paths, "/users")
		assert.Equal(t, "List users", doc.Paths["/users"]["get"].Summary)
	})

	t.Run("utf-8 bom is tolerated", func(t *testing.T) {
		path := writeSpec(t, "openapi.json", "\xEF\xBB\xBF"+`{"paths": {}}`)

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, doc.Paths)
	})

	t.Run("yaml document", func(t *testing.T) {
		path := writeSpec(t, "openapi.yaml", `
openapi: 3.0.3
security:
  - bearerAuth: []
paths:
  /ping:
    get:
      summary: Ping
`)

		doc, err := Load(path)
		require.NoError(t, err)
		require.Len(t, doc.Security, 1)
		require.Contains(t, doc.Paths, "/ping")
		assert.Equal(t, "Ping", doc.Paths["/ping"]["get"].Summary)
	})

	t.Run("malformed json is fatal", func(t *testing.T) {
		path := writeSpec(t, "openapi.json", `{"paths": `)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
