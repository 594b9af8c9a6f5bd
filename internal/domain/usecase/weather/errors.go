package weather

import "errors"

var (
	// ErrCityNotFound is returned when geocoding yields no place for a city.
	ErrCityNotFound = errors.New("city not found")

	// ErrEmptyQuery is returned when a place search is given blank text.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrInvalidCoordinate is returned for a latitude or longitude out of range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	errMissingCurrent = errors.New("response has no current block")
)

// MissingFieldError reports a required current-conditions field absent from the upstream response.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field " + e.Field
}
