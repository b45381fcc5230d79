package itinerary

import "errors"

var errEndBeforeStart = errors.New("end_date must not be before start_date")

type invalidDateError struct {
	field string
}

func (e invalidDateError) Error() string {
	return e.field + " must be a YYYY-MM-DD date"
}

func errInvalidDate(field string) error {
	return invalidDateError{field: field}
}
