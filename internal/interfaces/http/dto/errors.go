package dto

import "net/http"

// Common error codes the interface layer emits itself
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 500 so an unmapped code never
// silently becomes a success.
var errorCodeHTTPStatus = map[string]int{
	// Input problems
	"BAD_REQUEST":          http.StatusBadRequest,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"INVALID_CODE":         http.StatusBadRequest,
	"INVALID_SKU":          http.StatusBadRequest,
	"INVALID_PRICE":        http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"INVALID_ORDER":        http.StatusBadRequest,
	"INVALID_REASON":       http.StatusBadRequest,
	"INVALID_RESOLUTION":   http.StatusBadRequest,
	"INVALID_CARRIER":      http.StatusBadRequest,
	"INVALID_TRACKING":     http.StatusBadRequest,
	"INVALID_RETAILER":     http.StatusBadRequest,
	"INVALID_LOCATION":     http.StatusBadRequest,
	"INVALID_SCOPE":        http.StatusBadRequest,
	"INVALID_ROLE":         http.StatusBadRequest,
	"INVALID_PRODUCT_NAME": http.StatusBadRequest,
	"VALIDATION_FAILED":    http.StatusBadRequest,

	// Authentication
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// Authorization
	"FORBIDDEN":    http.StatusForbidden,
	"UNKNOWN_ROLE": http.StatusForbidden,

	// Resources
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"EMAIL_TAKEN":          http.StatusConflict,
	"CODE_TAKEN":           http.StatusConflict,
	"SKU_TAKEN":            http.StatusConflict,
	"DUPLICATE_SKU":        http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rules
	"INVALID_STATE": http.StatusUnprocessableEntity,

	"INTERNAL_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
