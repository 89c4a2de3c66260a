package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Upstream errors
	ErrTransport     = fmt.Errorf("upstream request failed")
	ErrResponseParse = fmt.Errorf("invalid upstream response")
	ErrRefreshFailed = fmt.Errorf("package refresh failed")
	ErrListingFailed = fmt.Errorf("package listing failed")

	// Input validation errors
	ErrInvalidFlag = fmt.Errorf("invalid flag value")
)
