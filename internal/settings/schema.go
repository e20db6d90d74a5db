package settings

// SchemaDef is a named JSON schema definition.
type SchemaDef struct {
	Name       string
	Definition map[string]any
}

// sectionSchema constrains a count/points pair.
func sectionSchema(description string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": description,
		"properties": map[string]any{
			"count": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Number of questions",
			},
			"points": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Points per question",
			},
		},
		"required":             []any{"count", "points"},
		"additionalProperties": false,
	}
}

// Schema is the JSON schema every loaded settings value must satisfy.
var Schema = &SchemaDef{
	Name: "mathsheet-settings",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"maxLength":   120,
				"description": "Heading of the question sheet",
			},
			"seed": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Random seed; 0 draws a fresh seed each run",
			},
			"tier": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Difficulty tier; 1-4 are defined, others use tier 1 rules",
			},
			"include_algebra": map[string]any{
				"type":        "boolean",
				"description": "Append algebra questions after the arithmetic ones",
			},
			"arithmetic": sectionSchema("Arithmetic questions"),
			"algebra":    sectionSchema("Algebra questions"),
		},
		"required":             []any{"title", "seed", "tier", "include_algebra", "arithmetic", "algebra"},
		"additionalProperties": false,
	},
}
