package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeResourceNotFound    ErrorCode = "RES_001"
	ErrorCodeConstraintViolation ErrorCode = "RES_002"
	ErrorCodeValidationFailed    ErrorCode = "VAL_001"
	ErrorCodeInternalServer      ErrorCode = "SRV_001"
	ErrorCodeStoreUnavailable    ErrorCode = "SRV_002"
	ErrorCodeMethodNotAllowed    ErrorCode = "REQ_001"
)

// ErrorResponse is the standard error payload: a stable, client-safe
// message. Raw store error text is logged server-side, never returned.
type ErrorResponse struct {
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code,omitempty"`
	Details string    `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: message,
		Code:  code,
	}
}

// WithDetails adds additional context to the error
func (e *ErrorResponse) WithDetails(details string) *ErrorResponse {
	e.Details = details
	return e
}
