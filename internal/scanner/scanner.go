package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/farmstack/go-apidetails-generator/internal/report"
)

type Scanner struct {
	roots          []string
	controllerDirs []string
	excluded       map[string]bool
	sourceExt      string
	routesFilename string
}

type Config struct {
	Roots          []string
	ControllerDirs []string
	ExcludedFiles  []string
	SourceExt      string
	RoutesFilename string
}

// Result holds everything the scan produced: the normalized route records
// (sorted by path, then method), per-style counts, and the controller files
// in which no route was detected.
type Result struct {
	Routes             []report.Route
	AttributeCount     int
	RouterCount        int
	MissingControllers []string
}

func New(config Config) *Scanner {
	excluded := make(map[string]bool, len(config.ExcludedFiles))
	for _, f := range config.ExcludedFiles {
		excluded[filepath.Clean(f)] = true
	}
	return &Scanner{
		roots:          config.Roots,
		controllerDirs: config.ControllerDirs,
		excluded:       excluded,
		sourceExt:      config.SourceExt,
		routesFilename: config.RoutesFilename,
	}
}

// Scan walks the configured roots, runs both extraction styles, and
// cross-references the results against the controller directories. A missing
// root is skipped silently, like a missing controller directory. Finding no
// declaration anywhere is not an error; it yields an empty route list and a
// full missing-routes report.
func (s *Scanner) Scan() *Result {
	result := &Result{Routes: []report.Route{}}
	filesWithRoutes := make(map[string]bool)

	for _, root := range s.roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(path, s.sourceExt) {
				return nil
			}
			if s.excluded[filepath.Clean(path)] {
				return nil
			}

			content := readSource(path)

			// Both styles run independently; a routes file may carry
			// attribute declarations as well.
			routes := scanAttributeFile(path, splitLines(content))
			if len(routes) > 0 {
				result.Routes = append(result.Routes, routes...)
				result.AttributeCount += len(routes)
				filesWithRoutes[path] = true
			}

			if filepath.Base(path) == s.routesFilename {
				routes := scanRoutesFile(path, content)
				if len(routes) > 0 {
					result.Routes = append(result.Routes, routes...)
					result.RouterCount += len(routes)
					filesWithRoutes[path] = true
				}
			}
			return nil
		})
	}

	report.SortRoutes(result.Routes)
	result.MissingControllers = s.missingControllers(filesWithRoutes)

	return result
}

// missingControllers returns every file under the controller directories that
// never appeared as the origin of a detected route. Pure set difference, no
// fuzzy matching. A missing controller directory is skipped silently.
func (s *Scanner) missingControllers(filesWithRoutes map[string]bool) []string {
	var missing []string
	for _, dir := range s.controllerDirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, s.sourceExt) {
				return nil
			}
			if !filesWithRoutes[path] {
				missing = append(missing, path)
			}
			return nil
		})
	}
	sort.Strings(missing)
	return missing
}

// readSource reads a file with best-effort decoding: an unreadable file
// contributes nothing to the scan, and invalid UTF-8 bytes are replaced
// rather than failing the run.
func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
