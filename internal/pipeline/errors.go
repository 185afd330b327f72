package pipeline

// ValidationError reports a document rejected before any analysis ran.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid document: " + e.Reason
}
