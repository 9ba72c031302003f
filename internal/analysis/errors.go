package analysis

import (
	"errors"
	"fmt"
	"log/slog"
)

// Failure conditions. Each ValidationError wraps exactly one of these, so
// callers branch with errors.Is.
var (
	ErrMalformedOption       = errors.New("malformed option")
	ErrMalformedDate         = errors.New("malformed date")
	ErrInvertedDateRange     = errors.New("inverted date range")
	ErrEmptyRegionSelection  = errors.New("empty region selection")
	ErrEmptyDateRangeResult  = errors.New("empty date range result")
	ErrEmptyComparisonResult = errors.New("empty comparison result")
)

// Field names the operator input a failure refers to.
type Field string

const (
	FieldOption       Field = "option"
	FieldRegion       Field = "region"
	FieldFirstRegion  Field = "first_region"
	FieldSecondRegion Field = "second_region"
	FieldStartDate    Field = "start_date"
	FieldEndDate      Field = "end_date"
	FieldDateRange    Field = "date_range"
)

// ValidationError is a recoverable failure of one pipeline step.
type ValidationError struct {
	Err     error
	Field   Field
	Input   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogValue keeps operator input and the failure kind as separate log fields.
func (e *ValidationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", e.Err.Error()),
		slog.String("field", string(e.Field)),
		slog.String("input", e.Input),
	)
}

func newValidationError(err error, field Field, input, message string) *ValidationError {
	return &ValidationError{Err: err, Field: field, Input: input, Message: message}
}

// IsValidationError reports whether err is a recoverable pipeline failure.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// FieldOf returns the field a validation failure refers to, or "".
func FieldOf(err error) Field {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field
	}
	return ""
}

func regionMessage(field Field) string {
	switch field {
	case FieldFirstRegion:
		return "Invalid first region code, please check your input"
	case FieldSecondRegion:
		return "Invalid second region code, please check your input"
	default:
		return "Invalid region code, please check your input"
	}
}

func dateMessage(field Field) string {
	if field == FieldEndDate {
		return "Invalid end date, please check your input"
	}
	return "Invalid start date, please check your input"
}

func optionMessage(input string) string {
	return fmt.Sprintf("Invalid option : %s", input)
}
