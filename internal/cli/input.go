package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bobmcallan/propex/internal/models"
)

// loadScenario reads a scenario request from a JSON or YAML file. "-" reads
// JSON from stdin.
func loadScenario(path string) (models.ScenarioRequest, error) {
	var req models.ScenarioRequest

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("read scenario %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	}
	return req, nil
}
