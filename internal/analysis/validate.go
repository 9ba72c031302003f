package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"covidstat.mindtree.org/internal/models"
)

var optionPattern = regexp.MustCompile(`^[0-9]+$`)

// ParseOption validates a menu selection: a non-empty string of ASCII digits.
func ParseOption(input string) (int, error) {
	if !optionPattern.MatchString(input) {
		return 0, newValidationError(ErrMalformedOption, FieldOption, input, optionMessage(input))
	}
	option, err := strconv.Atoi(input)
	if err != nil {
		return 0, newValidationError(ErrMalformedOption, FieldOption, input, optionMessage(input))
	}
	return option, nil
}

// ParseDate parses operator date input for the given field.
func ParseDate(field Field, input string) (time.Time, error) {
	date, err := time.Parse(models.InputDateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, newValidationError(ErrMalformedDate, field, input, dateMessage(field))
	}
	return date, nil
}

// ValidateDateRange fails unless start is strictly before end.
func ValidateDateRange(start, end time.Time) error {
	if !models.CalendarDate(start).Before(models.CalendarDate(end)) {
		input := models.FormatDateKey(start) + ".." + models.FormatDateKey(end)
		return newValidationError(ErrInvertedDateRange, FieldDateRange, input,
			"Invalid date range, please check your input")
	}
	return nil
}

// ValidateRegionSelection fails when a region filter matched nothing. field
// tells the caller which code to ask for again.
func ValidateRegionSelection(field Field, code string, records []models.Record) error {
	if len(records) == 0 {
		return newValidationError(ErrEmptyRegionSelection, field, code, regionMessage(field))
	}
	return nil
}

// ValidateDateRangeResult fails when a date-range filter matched nothing.
func ValidateDateRangeResult(records []models.Record) error {
	if len(records) == 0 {
		return newValidationError(ErrEmptyDateRangeResult, FieldDateRange, "", "No data present")
	}
	return nil
}

// ValidateDateAggregate fails when an aggregation produced no dates.
func ValidateDateAggregate(agg *models.DateAggregate) error {
	if agg.Len() == 0 {
		return newValidationError(ErrEmptyDateRangeResult, FieldDateRange, "", "No data present")
	}
	return nil
}

// ValidateComparison fails when the merged comparison has no rows.
func ValidateComparison(comparison *models.Comparison) error {
	if comparison.Len() == 0 {
		return newValidationError(ErrEmptyComparisonResult, FieldDateRange, "", "No data present")
	}
	return nil
}
