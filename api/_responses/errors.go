package _responses

import (
	"github.com/t2bot/portfolio-repo/common"
)

type ErrorResponse struct {
	Code         string      `json:"errcode"`
	Message      string      `json:"error"`
	Details      interface{} `json:"details,omitempty"`
	InternalCode string      `json:"-"`
}

func InternalServerError(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknown, message, nil, common.ErrCodeUnknown}
}

func InternalServerErrorWithDetails(message string, details interface{}) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknown, message, details, common.ErrCodeUnknown}
}

func MethodNotAllowed() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeMethodNotAllowed, "Method Not Allowed", nil, common.ErrCodeMethodNotAllowed}
}

func RateLimitReached() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeRateLimitExceeded, "Too many requests", nil, common.ErrCodeRateLimitExceeded}
}

func NotFoundError() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeNotFound, "Not found", nil, common.ErrCodeNotFound}
}

func NotFound(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeNotFound, message, nil, common.ErrCodeNotFound}
}

func RequestTooLarge() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeTooLarge, "Too Large", nil, common.ErrCodeTooLarge}
}

func AuthFailed() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknownToken, "Authentication Failed", nil, common.ErrCodeUnknownToken}
}

func MissingToken() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeMissingToken, "Authentication Failed", nil, common.ErrCodeMissingToken}
}

func InvalidCredentials() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknownToken, "Invalid email or password", nil, common.ErrCodeUnknownToken}
}

func Forbidden(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeForbidden, message, nil, common.ErrCodeForbidden}
}

func BadRequest(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeBadRequest, message, nil, common.ErrCodeBadRequest}
}

func InvalidInput(err *common.ValidationError) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeInvalidInput, "Invalid input data", err.Issues, common.ErrCodeInvalidInput}
}
