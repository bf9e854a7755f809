package alias

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaiyo-foods/receiptlines/internal/common"
)

// Entry is one alias mapping in the YAML source: a list of match strings
// resolving to one canonical string.
type Entry struct {
	Match     []string `yaml:"match"`
	Canonical string   `yaml:"canonical"`
}

type aliasFile struct {
	Aliases []Entry `yaml:"aliases"`
}

// Load reads the alias table from the YAML file at path. A missing file is
// non-fatal: a warning is logged and an empty (identity) table is returned.
// A malformed file is a startup error.
func Load(path string, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return NewTable(nil), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("alias.load.missing", "path", path)
			return NewTable(nil), nil
		}
		return nil, common.NewAppError("ALIAS_READ", fmt.Sprintf("read alias file %s", path), err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewAppError("ALIAS_PARSE", fmt.Sprintf("parse alias file %s", path), err)
	}
	if err := common.ValidateAgainstSchema(aliasSchema(), doc); err != nil {
		return nil, common.NewAppError("ALIAS_SCHEMA", fmt.Sprintf("alias file %s", path), err)
	}

	var file aliasFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, common.NewAppError("ALIAS_PARSE", fmt.Sprintf("parse alias file %s", path), err)
	}

	pairs := make(map[string]string)
	for _, e := range file.Aliases {
		for _, m := range e.Match {
			if m != "" && e.Canonical != "" {
				pairs[m] = e.Canonical
			}
		}
	}
	table := NewTable(pairs)
	logger.Info("alias.load.ok", "path", path, "mappings", table.Len())
	return table, nil
}

func aliasSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"aliases"},
		"properties": map[string]any{
			"aliases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"match", "canonical"},
					"properties": map[string]any{
						"match": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string", "minLength": 1},
						},
						"canonical": map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
	}
}
