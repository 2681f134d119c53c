package apperror

// ErrorCode is the general system-level category of an error.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeUpstream         ErrorCode = "UPSTREAM_ERROR"
	CodeInternalError    ErrorCode = "INTERNAL_SERVER_ERROR"
)

// BusinessCode is the specific reason behind an error.
type BusinessCode string

const (
	BusinessCodeGeneral             BusinessCode = "GENERAL"
	BusinessCodePostNotFound        BusinessCode = "POST_NOT_FOUND"
	BusinessCodeInvalidCursor       BusinessCode = "INVALID_CURSOR"
	BusinessCodeInvalidPreviewToken BusinessCode = "INVALID_PREVIEW_TOKEN"
	BusinessCodeCMSUnavailable      BusinessCode = "CMS_UNAVAILABLE"
	BusinessCodeInvalidFormat       BusinessCode = "INVALID_FORMAT"
)
