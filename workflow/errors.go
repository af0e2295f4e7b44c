package workflow

import "fmt"

// ValidationError is an expected business failure on user input. Callers
// block the action and re-prompt; nothing was applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ResolutionError means a banking transaction references a document that
// could not be found in either the pending or settled collection. The caller
// must abort the delete so the link survives for a retry.
type ResolutionError struct {
	Category    string
	RelatedId   string
	RelatedName string
	Detail      string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: category=%s related_id=%q related_name=%q",
		e.Detail, e.Category, e.RelatedId, e.RelatedName)
}
