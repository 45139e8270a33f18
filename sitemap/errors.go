package sitemap

import (
	"fmt"
	"strconv"

	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for sitemap construction and output
type ErrorCode string

const (
	// Video rules
	ErrDescriptionTooLong  ErrorCode = "DescriptionTooLong"
	ErrDurationTooShort    ErrorCode = "DurationTooShort"
	ErrDurationTooLong     ErrorCode = "DurationTooLong"
	ErrRatingTooLow        ErrorCode = "RatingTooLow"
	ErrRatingTooHigh       ErrorCode = "RatingTooHigh"
	ErrUploaderNameTooLong ErrorCode = "UploaderNameTooLong"
	ErrTooManyTags         ErrorCode = "TooManyTags"

	// URL rules
	ErrPriorityTooLow              ErrorCode = "PriorityTooLow"
	ErrPriorityTooHigh             ErrorCode = "PriorityTooHigh"
	ErrTooManyImages               ErrorCode = "TooManyImages"
	ErrDuplicateAlternateHreflangs ErrorCode = "DuplicateAlternateHreflangs"

	// Document rules
	ErrTooManyURLs     ErrorCode = "TooManyURLs"
	ErrTooMuchNews     ErrorCode = "TooMuchNews"
	ErrTooManySitemaps ErrorCode = "TooManySitemaps"

	// ErrInvalidIndent is returned by Write and friends when WithIndent was
	// given anything but spaces and tabs. Nothing is written.
	ErrInvalidIndent ErrorCode = "InvalidIndent"

	// ErrWrite represents failures while rendering or writing a document.
	// It never describes invalid input.
	ErrWrite ErrorCode = "WriteError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

func lengthError(code ErrorCode, what string, length, limit int) error {
	return failure.New(code,
		failure.Message(fmt.Sprintf("%s must be no longer than %d characters, got %d", what, limit, length)),
		failure.Context{"length": strconv.Itoa(length)},
	)
}

func countError(code ErrorCode, what string, count, limit int) error {
	return failure.New(code,
		failure.Message(fmt.Sprintf("no more than %d %s allowed, got %d", limit, what, count)),
		failure.Context{"count": strconv.Itoa(count)},
	)
}

func lowerBoundError(code ErrorCode, what string, value, limit float64) error {
	return failure.New(code,
		failure.Message(fmt.Sprintf("%s must be at least %s, got %s", what, formatFloat(limit), formatFloat(value))),
		failure.Context{what: formatFloat(value)},
	)
}

func upperBoundError(code ErrorCode, what string, value, limit float64) error {
	return failure.New(code,
		failure.Message(fmt.Sprintf("%s must be at most %s, got %s", what, formatFloat(limit), formatFloat(value))),
		failure.Context{what: formatFloat(value)},
	)
}

func writeError(err error, doc string) error {
	return failure.Wrap(err, failure.WithCode(ErrWrite),
		failure.Message(fmt.Sprintf("failed to write %s", doc)),
		failure.Context{"document": doc},
	)
}
