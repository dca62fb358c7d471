package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Violation is one failed schema constraint.
type Violation struct {
	// Path is the argument location, e.g. "targeting.age_targeting.min_age".
	// Empty for the argument object itself.
	Path    string
	Message string
}

// ArgumentError reports arguments rejected before any upstream call.
type ArgumentError struct {
	Tool       string
	Violations []Violation
}

func (e *ArgumentError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		path := v.Path
		if path == "" {
			path = "arguments"
		}
		parts = append(parts, path+": "+v.Message)
	}
	return fmt.Sprintf("Invalid arguments for %s: %s", e.Tool, strings.Join(parts, "; "))
}

// compileSchema compiles the input schema a tool publishes. Undeclared
// top-level keys are rejected.
func compileSchema(tool mcp.Tool) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal schema for %s", tool.Name)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode schema for %s", tool.Name)
	}
	doc["additionalProperties"] = false
	if _, ok := doc["properties"]; !ok {
		doc["properties"] = map[string]any{}
	}
	raw, err = json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal schema for %s", tool.Name)
	}

	url := "mem://tools/" + tool.Name + ".json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, errors.Wrapf(err, "add schema for %s", tool.Name)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, errors.Wrapf(err, "compile schema for %s", tool.Name)
	}
	return schema, nil
}

// normalize re-encodes raw arguments so the validator only sees JSON types.
func normalize(raw map[string]any) ([]byte, any, error) {
	if raw == nil {
		raw = map[string]any{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, err
	}
	return data, doc, nil
}

func argumentError(tool string, err error) *ArgumentError {
	argErr := &ArgumentError{Tool: tool}
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		collectViolations(ve, &argErr.Violations)
	}
	if len(argErr.Violations) == 0 {
		argErr.Violations = []Violation{{Message: err.Error()}}
	}
	return argErr
}

// collectViolations flattens the validator's error tree to its leaves.
func collectViolations(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{
			Path:    pointerToPath(ve.InstanceLocation),
			Message: ve.Message,
		})
		return
	}
	for _, cause := range ve.Causes {
		collectViolations(cause, out)
	}
}

func pointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	segments := strings.Split(pointer, "/")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~1", "/")
		segments[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return strings.Join(segments, ".")
}
