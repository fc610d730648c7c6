package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads and decodes an OpenAPI document. JSON is the conventional input;
// files with a .yaml or .yml extension decode as YAML. A leading UTF-8 BOM is
// tolerated since Windows tooling tends to emit one. Any decode failure is
// fatal to the run — there is no partial document.
func Load(specPath string) (*Document, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var doc Document
	switch strings.ToLower(filepath.Ext(specPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse spec YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse spec JSON: %w", err)
		}
	}

	return &doc, nil
}
