package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FlyRocketToMars/RocktheInterview/internal/schemas"
)

// templateDocument is the on-disk shape of the plan template configuration.
type templateDocument struct {
	Templates []Template `json:"templates"`
}

// LoadTemplates reads, schema-validates and invariant-checks the plan
// template document at path. Failures are fatal to startup.
func LoadTemplates(path, schemaPath string) (*Registry, error) {
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, fmt.Errorf("plan templates %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan templates %s: %w", path, err)
	}

	var doc templateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan template JSON: %w", err)
	}

	registry, err := NewRegistry(doc.Templates)
	if err != nil {
		return nil, fmt.Errorf("invalid plan templates %s: %w", path, err)
	}

	return registry, nil
}
