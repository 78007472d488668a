package questionbank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FlyRocketToMars/RocktheInterview/internal/schemas"
)

type bankDocument struct {
	Questions []Question `json:"questions"`
}

// Load reads and schema-validates the question corpus at path. Failures are
// fatal to startup.
func Load(path, schemaPath string) (*Bank, error) {
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}

	var doc bankDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse question bank JSON: %w", err)
	}

	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("question bank %s is empty", path)
	}

	return NewBank(doc.Questions), nil
}
