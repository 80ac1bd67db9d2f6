package bench

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// PlanSchema returns the JSON Schema describing the YAML plan document, for
// editor validation of plan files.
func PlanSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "An ordered list of profiled query invocations.",
		Properties: map[string]*jsonschema.Schema{
			"target": {
				Type:        "string",
				Description: "Target binary to invoke, overriding the runner default.",
			},
			"invocations": {
				Type:        "array",
				Description: "Invocations, executed first to last.",
				Items:       invocationSchema(),
			},
		},
		Required: []string{"invocations"},
		// Reject unknown keys so typos in plan files surface early.
		AdditionalProperties: falseSchema(),
	}
}

func invocationSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"profile": {
				Type:        "string",
				Description: "Profiler output path, unique within the plan.",
			},
			"args": {
				Type:        "array",
				Description: "Query arguments passed to the target.",
				Items:       &jsonschema.Schema{Type: "string"},
			},
		},
		Required:             []string{"profile"},
		AdditionalProperties: falseSchema(),
	}
}

// falseSchema returns a schema that validates nothing (marshals to JSON
// false).
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
