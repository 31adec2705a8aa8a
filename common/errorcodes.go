package common

const ErrCodeNotFound = "P_NOT_FOUND"
const ErrCodeUnknownToken = "P_UNKNOWN_TOKEN"
const ErrCodeMissingToken = "P_MISSING_TOKEN"
const ErrCodeForbidden = "P_FORBIDDEN"
const ErrCodeBadRequest = "P_BAD_REQUEST"
const ErrCodeInvalidInput = "P_INVALID_INPUT"
const ErrCodeMethodNotAllowed = "P_METHOD_NOT_ALLOWED"
const ErrCodeRateLimitExceeded = "P_LIMIT_EXCEEDED"
const ErrCodeTooLarge = "P_TOO_LARGE"
const ErrCodeUnknown = "P_UNKNOWN"
