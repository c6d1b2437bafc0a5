package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParamError represents a path or body value that could not be parsed
type ParamError struct {
	Name    string
	Value   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Name, e.Value, e.Message)
}

// ParseID parses a positive integer identifier such as a path parameter
func ParseID(name, value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		return 0, &ParamError{
			Name:    name,
			Value:   value,
			Message: "must be a positive integer",
		}
	}
	return uint(id), nil
}

// orderDateLayouts are the accepted order_date formats, tried in order
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseOrderDate parses an order_date value. Values without a zone are taken as UTC.
func ParseOrderDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ParamError{
		Name:    "order_date",
		Value:   value,
		Message: "Not a valid datetime.",
	}
}
