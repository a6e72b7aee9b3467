package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DUPLICATE_VENDOR_PROFILE"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope the error middleware writes when a
// request fails outside a handler's own response mapping.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
