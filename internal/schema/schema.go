// SPDX-License-Identifier: AGPL-3.0-or-later

// Package schema validates exported commit lists against the published JSON Schema.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed commits.schema.json
var commitsSchema []byte

var (
	commitsLoader     gojsonschema.JSONLoader
	commitsLoaderOnce sync.Once
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "commit list failed schema validation"
	}
	return "commit list failed schema validation: " + strings.Join(e.Issues, "; ")
}

// Raw returns the embedded schema document.
func Raw() []byte {
	out := make([]byte, len(commitsSchema))
	copy(out, commitsSchema)
	return out
}

// Validate checks raw JSON against the commit list schema. Schema violations are
// reported as *ValidationError; malformed JSON is reported as a plain error.
func Validate(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("schema: malformed JSON: %w", err)
	}

	result, err := gojsonschema.Validate(loader(), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema: validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return &ValidationError{Issues: issues}
}

func loader() gojsonschema.JSONLoader {
	commitsLoaderOnce.Do(func() {
		commitsLoader = gojsonschema.NewBytesLoader(commitsSchema)
	})
	return commitsLoader
}
