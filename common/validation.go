package common

import (
	"strings"
)

type FieldIssue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// ValidationError collects every problem with a request body so they can be
// reported at once.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		if len(i.Path) > 0 {
			msgs = append(msgs, strings.Join(i.Path, ".")+": "+i.Message)
		} else {
			msgs = append(msgs, i.Message)
		}
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(message string, path ...string) {
	e.Issues = append(e.Issues, FieldIssue{Path: path, Message: message})
}

// OrNil returns nil when no issues were recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}
