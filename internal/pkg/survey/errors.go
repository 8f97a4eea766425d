package survey

import (
	"fmt"
	"strings"
)

// FieldError is one schema violation, addressed by the path of the offending
// field in wire (camelCase) notation, e.g.
// questionnaire.questions[2].children[0].options.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationError carries every schema violation found in one document.
// Document-level fields are checked independently so all of them can be
// reported at once; recursion into questions and facet filters stops at the
// first failing node.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		messages[i] = field.String()
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// SyntaxError reports input that could not be parsed as JSON at all.
type SyntaxError struct {
	Cause error
}

func (e *SyntaxError) Error() string {
	return "invalid JSON: " + e.Cause.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}
