package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FlyRocketToMars/RocktheInterview/internal/schemas"
)

// aliasDocument is the on-disk shape of the alias configuration.
type aliasDocument struct {
	Aliases map[string]string `json:"aliases"`
}

// Load reads, schema-validates and invariant-checks the taxonomy document at
// path. Any failure is fatal to startup: there is no degraded mode for
// malformed static configuration.
func Load(path, schemaPath string) (*Taxonomy, error) {
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", path, err)
	}

	return &t, nil
}

// LoadAliases reads and validates the alias table at path against the
// already-loaded taxonomy.
func LoadAliases(path, schemaPath string, t *Taxonomy) (AliasTable, error) {
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, fmt.Errorf("aliases %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}

	var doc aliasDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse alias JSON: %w", err)
	}

	table := AliasTable(doc.Aliases)
	if err := table.Validate(t); err != nil {
		return nil, fmt.Errorf("invalid alias table %s: %w", path, err)
	}

	return table, nil
}
