package scryfall

import "fmt"

// ShapeError reports a response body that is neither a recognized card object
// nor a recognized error object. Payload carries the raw body for diagnostics.
type ShapeError struct {
	Payload string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unrecognized scryfall response: %s", truncate(e.Payload, 200))
}

// APIError reports a typed Scryfall error that is neither "ambiguous" nor
// "not_found" (e.g. rate limit, server error). Payload carries the raw body.
type APIError struct {
	Code    string
	Details string
	Payload string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall error (%s): %s", e.Code, e.Details)
	}
	return fmt.Sprintf("scryfall error (%s): %s", e.Code, truncate(e.Payload, 200))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
