package rules

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaiyo-foods/receiptlines/constants"
	"github.com/kaiyo-foods/receiptlines/internal/common"
)

// Registry maps vendor tags to their applicable rule sets. It is constructed
// once at startup and shared by reference; adding a vendor is a data change.
type Registry struct {
	byVendor map[constants.Vendor]*RuleSet
	baseline *RuleSet
}

// ForVendor returns the rule set for the vendor, falling back to the shared
// baseline when the vendor has no dedicated rules.
func (r *Registry) ForVendor(v constants.Vendor) *RuleSet {
	if rs, ok := r.byVendor[v]; ok {
		return rs
	}
	return r.baseline
}

// DefaultRegistry builds the compiled-in rule sets.
func DefaultRegistry() *Registry {
	rd, err := compilePatterns(constants.VendorRD, rdNonItemPatterns)
	if err != nil {
		// compiled-in patterns are constants; a failure here is a programming error
		panic(err)
	}
	baseline, err := compilePatterns(constants.VendorUnknown, baselineNonItemPatterns)
	if err != nil {
		panic(err)
	}
	return &Registry{
		byVendor: map[constants.Vendor]*RuleSet{constants.VendorRD: rd},
		baseline: baseline,
	}
}

// vendorRulesFile is the YAML override document shape:
//
//	vendors:
//	  RD:
//	    non_item:
//	      - '^SUBTOTAL'
type vendorRulesFile struct {
	Vendors map[string]vendorRulesEntry `yaml:"vendors"`
}

type vendorRulesEntry struct {
	NonItem []string `yaml:"non_item"`
}

// Load returns the default registry overlaid with rule sets from the YAML
// file at path. A missing file degrades to the defaults with a warning;
// a malformed file is a startup error.
func Load(path string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	reg := DefaultRegistry()
	if path == "" {
		return reg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("rules.load.missing", "path", path)
			return reg, nil
		}
		return nil, common.NewAppError("RULES_READ", fmt.Sprintf("read vendor rules %s", path), err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewAppError("RULES_PARSE", fmt.Sprintf("parse vendor rules %s", path), err)
	}
	if err := common.ValidateAgainstSchema(vendorRulesSchema(), doc); err != nil {
		return nil, common.NewAppError("RULES_SCHEMA", fmt.Sprintf("vendor rules %s", path), err)
	}

	var file vendorRulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, common.NewAppError("RULES_PARSE", fmt.Sprintf("parse vendor rules %s", path), err)
	}
	for tag, entry := range file.Vendors {
		v := constants.ParseVendor(tag)
		rs, err := compilePatterns(v, entry.NonItem)
		if err != nil {
			return nil, common.NewAppError("RULES_COMPILE", fmt.Sprintf("vendor rules %s", path), err)
		}
		reg.byVendor[v] = rs
	}
	logger.Info("rules.load.ok", "path", path, "vendors", len(file.Vendors))
	return reg, nil
}

// vendorRulesSchema constrains the override document before compilation.
func vendorRulesSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"vendors"},
		"properties": map[string]any{
			"vendors": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"non_item"},
					"properties": map[string]any{
						"non_item": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string", "minLength": 1},
						},
					},
				},
			},
		},
	}
}
