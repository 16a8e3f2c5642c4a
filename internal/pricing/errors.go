package pricing

import "fmt"

// FetchError: the document could not be read (transport failure or non-2xx status).
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch JSON: %v", e.Err)
	}
	return fmt.Sprintf("failed to fetch JSON (status %d)", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// WrongContentError: the body is markup, usually an HTML error or redirect page
// served for a misconfigured document path.
type WrongContentError struct{}

func (e *WrongContentError) Error() string {
	return "server returned HTML instead of JSON, check that " + DocumentPath + " is served"
}

// ParseError: the body is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("invalid pricing JSON: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError: no plan with the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return "plan not found" }
