package response

import (
	"github.com/gin-gonic/gin"
)

// Common error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// Domain error codes. Each failure is distinguishable so the client can show a
// specific message instead of a catch-all.
const (
	ErrCodeAlreadyParticipating = "ALREADY_PARTICIPATING"
	ErrCodeMeetingNotRecruiting = "MEETING_NOT_RECRUITING"
	ErrCodeNotAParticipant      = "NOT_A_PARTICIPANT"
	ErrCodeNotACandidate        = "NOT_A_CANDIDATE"
	ErrCodeInvalidCandidateSet  = "INVALID_CANDIDATE_SET"
	ErrCodeNoCandidates         = "NO_CANDIDATES"
	ErrCodeAlreadySpun          = "ALREADY_SPUN"
	ErrCodeCannotCreateMeeting  = "CANNOT_CREATE_MEETING"
)

// AppError is the error type carried from the service layer to the handlers
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates a not-found AppError
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, "")
}

// NewValidationError creates a validation AppError
func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, "")
}

// NewForbiddenError creates a forbidden AppError
func NewForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, "")
}

// ErrorBody is the error payload inside an ErrorResponse
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse is the standard success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// SendError writes a standard error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// SendSuccess writes a standard success response
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
	})
}
