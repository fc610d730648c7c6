package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScan(t *testing.T) {
	t.Run("both styles merged and sorted", func(t *testing.T) {
		root := t.TempDir()
		controllers := filepath.Join(root, "Controllers")

		writeFile(t, filepath.Join(controllers, "UserController.php"), `<?php
#[RouteGroup('/api')]
class UserController
{
    #[Route('/users', method: 'post', description: 'Create user')]
    public function store()
    {
    }
}`)
		writeFile(t, filepath.Join(root, "routes.php"), `<?php
Router::group('/api', ['auth']);
Router::get('/users', [UserController::class, 'list']);
`)
		writeFile(t, filepath.Join(controllers, "OrphanController.php"), `<?php
class OrphanController
{
    public function nothing()
    {
    }
}`)

		s := New(Config{
			Roots:          []string{root},
			ControllerDirs: []string{controllers},
			SourceExt:      ".php",
			RoutesFilename: "routes.php",
		})
		result := s.Scan()

		require.Len(t, result.Routes, 2)
		assert.Equal(t, 1, result.AttributeCount)
		assert.Equal(t, 1, result.RouterCount)

		// Sorted by (path, method): GET before POST on the shared path.
		assert.Equal(t, "/api/users", result.Routes[0].Path)
		assert.Equal(t, "GET", result.Routes[0].Method)
		assert.Equal(t, "POST", result.Routes[1].Method)

		require.Len(t, result.MissingControllers, 1)
		assert.Equal(t, filepath.Join(controllers, "OrphanController.php"), result.MissingControllers[0])

		// A second pass over unchanged input produces the same result.
		assert.Equal(t, result, s.Scan())
	})

	t.Run("excluded files are not scanned", func(t *testing.T) {
		root := t.TempDir()
		excluded := filepath.Join(root, "MakeModuleCommand.php")
		writeFile(t, excluded, `#[Route('/should-not-appear')]`)

		s := New(Config{
			Roots:          []string{root},
			ExcludedFiles:  []string{excluded},
			SourceExt:      ".php",
			RoutesFilename: "routes.php",
		})
		result := s.Scan()

		assert.Empty(t, result.Routes)
	})

	t.Run("non-matching extensions are ignored", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "notes.txt"), `#[Route('/not-source')]`)

		s := New(Config{Roots: []string{root}, SourceExt: ".php", RoutesFilename: "routes.php"})
		result := s.Scan()

		assert.Empty(t, result.Routes)
	})

	t.Run("missing scan root skipped silently", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "PingController.php"), `#[Route('/ping')]`)

		s := New(Config{
			Roots:          []string{root, filepath.Join(root, "does-not-exist")},
			SourceExt:      ".php",
			RoutesFilename: "routes.php",
		})
		result := s.Scan()

		require.Len(t, result.Routes, 1)
		assert.Equal(t, "/ping", result.Routes[0].Path)
	})

	t.Run("missing controller directory skipped silently", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "PingController.php"), `#[Route('/ping')]`)

		s := New(Config{
			Roots:          []string{root},
			ControllerDirs: []string{filepath.Join(root, "does-not-exist")},
			SourceExt:      ".php",
			RoutesFilename: "routes.php",
		})
		result := s.Scan()

		assert.Len(t, result.Routes, 1)
		assert.Empty(t, result.MissingControllers)
	})

	t.Run("no declarations yields full missing report", func(t *testing.T) {
		root := t.TempDir()
		controllers := filepath.Join(root, "Controllers")
		writeFile(t, filepath.Join(controllers, "AController.php"), `<?php class AController {}`)
		writeFile(t, filepath.Join(controllers, "BController.php"), `<?php class BController {}`)

		s := New(Config{
			Roots:          []string{root},
			ControllerDirs: []string{controllers},
			SourceExt:      ".php",
			RoutesFilename: "routes.php",
		})
		result := s.Scan()

		assert.Empty(t, result.Routes)
		require.Len(t, result.MissingControllers, 2)
		assert.Equal(t, filepath.Join(controllers, "AController.php"), result.MissingControllers[0])
	})

	t.Run("invalid utf-8 handled with substitution", func(t *testing.T) {
		root := t.TempDir()
		content := append([]byte{0xFF, 0xFE, '\n'}, []byte("#[Route('/binary')]\n")...)
		path := filepath.Join(root, "BinaryController.php")
		require.NoError(t, os.WriteFile(path, content, 0644))

		s := New(Config{Roots: []string{root}, SourceExt: ".php", RoutesFilename: "routes.php"})
		result := s.Scan()

		require.Len(t, result.Routes, 1)
		assert.Equal(t, "/binary", result.Routes[0].Path)
	})
}
