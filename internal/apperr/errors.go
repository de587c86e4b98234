package apperr

// Issue describes a single invalid input field, mirroring the
// error envelope's issues array.
type Issue struct {
	Code    string   `json:"code"`
	Path    []string `json:"path"`
	Message string   `json:"message,omitempty"`
}

// Issue codes.
const (
	CodeInvalidType = "invalid_type"
	CodeTooSmall    = "too_small"
	CodeInvalidEnum = "invalid_enum_value"
)

type ValidationError struct {
	Message string
	Issues  []Issue
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

func NewValidationIssues(issues ...Issue) *ValidationError {
	return &ValidationError{Message: "invalid request parameters", Issues: issues}
}

// NotFoundError reports that a referenced entity has no matching row.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// NoResultsError reports a valid request whose scope holds no candidate
// rows (e.g. highlights for an author with zero articles). Distinct from
// NotFoundError: the referenced id itself may be perfectly valid.
type NoResultsError struct {
	Message string
}

func (e *NoResultsError) Error() string {
	return e.Message
}

func NewNoResults(msg string) *NoResultsError {
	return &NoResultsError{Message: msg}
}
