package domain

import "encoding/json"

// ValidateArchitectureJSON confirms an agent reply parses as a JSON object
// and returns the original string, so the stored value stays byte-exact.
func ValidateArchitectureJSON(reply string) (string, error) {
	if err := validateJSONObject(reply); err != nil {
		return "", err
	}
	return reply, nil
}

// ArchitectureSummary extracts component names and pattern names from an
// architecture document for progress reporting. An unparseable document
// yields empty slices.
func ArchitectureSummary(architecture string) (components, patterns []string) {
	var doc struct {
		Components []struct {
			Name string `json:"name"`
		} `json:"components"`
		Patterns []string `json:"patterns"`
	}
	if err := json.Unmarshal([]byte(architecture), &doc); err != nil {
		return nil, nil
	}
	for _, c := range doc.Components {
		components = append(components, c.Name)
	}
	return components, doc.Patterns
}

// ErrorArchitectureJSON renders an architecture-stage failure as the stored
// payload {"error": "<message>"}, keeping the architecture field valid JSON.
func ErrorArchitectureJSON(err error) string {
	msg, merr := json.Marshal(err.Error())
	if merr != nil {
		return `{"error": "architecture generation failed"}`
	}
	return `{"error": ` + string(msg) + `}`
}
