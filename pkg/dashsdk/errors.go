package dashsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Well-known error codes returned by the dashboard service.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeRoleMismatch       = "role_mismatch"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvitationUsed     = "invitation_used"
	ErrorCodeInvitationExpired  = "invitation_expired"
	ErrorCodeEmailMismatch      = "email_mismatch"
	ErrorCodeRateLimited        = "rate_limited"
	ErrorCodeServerError        = "server_error"
)

// APIError is a typed error decoded from the service's error body.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsForbidden reports whether err is an APIError for a role or ownership
// rejection.
func IsForbidden(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusForbidden
}

// parseErrorResponse turns a non-2xx response body into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
