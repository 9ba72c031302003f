package utils

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// Region codes are short state codes, but imported data may carry full names.
	validCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_. -]+$`)

	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const maxCodeLength = 100

// ValidateRegionCode checks that a region code is present, short and plain.
func ValidateRegionCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errors.New("code cannot be empty")
	}

	if len(code) > maxCodeLength {
		return fmt.Errorf("code too long (max %d characters)", maxCodeLength)
	}

	if !validCodePattern.MatchString(code) {
		return errors.New("code contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// RequiredParams returns the sanitized values of keys, recording a field
// error for each key that is missing or blank.
func RequiredParams(params url.Values, fieldErrors map[string][]string, keys ...string) (map[string]string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value := SanitizeInput(params.Get(key))
		if value == "" {
			fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
			continue
		}
		values[key] = value
	}
	return values, fieldErrors
}
