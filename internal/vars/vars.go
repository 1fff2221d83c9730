package vars

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Sources describes where interpolation variables come from.
type Sources struct {
	Env      bool     // include the process environment
	EnvFiles []string // dotenv files
	VarFiles []string // JSON or TOML files mapping keys to string values
	Sets     []string // key=value literals from --set flags
}

// Load merges all configured sources into a single variable map. Later
// sources win: --set beats variable files, which beat dotenv files, which
// beat the environment.
func Load(src Sources) (map[string]string, error) {
	merged := make(map[string]string)

	if src.Env {
		for _, kv := range os.Environ() {
			key, value, _ := strings.Cut(kv, "=")
			merged[key] = value
		}
	}

	for _, path := range src.EnvFiles {
		m, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for key, value := range m {
			merged[key] = value
		}
	}

	for _, path := range src.VarFiles {
		m, err := readVarFile(path)
		if err != nil {
			return nil, err
		}
		for key, value := range m {
			merged[key] = value
		}
	}

	for _, set := range src.Sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set value %q: want key=value", set)
		}
		merged[key] = value
	}

	return merged, nil
}

// readVarFile parses a JSON or TOML file into a flat string map, chosen by
// file extension.
func readVarFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading variables file: %w", err)
	}

	vars := make(map[string]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("parsing variables file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("parsing variables file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported variables file %s: want .json or .toml", path)
	}
	return vars, nil
}
