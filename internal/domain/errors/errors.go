package errors

import (
	"net/http"

	"menuboard/internal/errors"
)

// Business error codes shared by every operation.
const (
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeReferentialIntegrity  = "REFERENTIAL_INTEGRITY"
	CodeInternalError         = "INTERNAL_ERROR"
	CodeDatabaseExecuteFailed = "DATABASE_EXECUTE_FAILED"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidationError creates a validation error carrying a user-facing message.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidationFailed, message, "")
}

// NewNotFoundError creates a not-found error carrying a user-facing message.
func NewNotFoundError(message string) *BaseError {
	return NewBaseError(http.StatusNotFound, CodeNotFound, message, "")
}

// NewConflictError creates a uniqueness conflict error.
func NewConflictError(message string) *BaseError {
	return NewBaseError(http.StatusConflict, CodeConflict, message, "")
}

// NewReferentialIntegrityError creates an error for a broken or still-held reference.
func NewReferentialIntegrityError(message string) *BaseError {
	return NewBaseError(http.StatusUnprocessableEntity, CodeReferentialIntegrity, message, "")
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Category-related errors
	ErrCategoryNameEmpty = NewValidationError("Category name cannot be empty.")

	ErrCategoryIDRequired = NewValidationError("Category ID must be provided.")

	ErrCategoryNotFound = NewNotFoundError("Category not found.")

	ErrCategoryAlreadyExists = NewConflictError("A category with this name already exists.")

	ErrCategoryHasProducts = NewReferentialIntegrityError(
		"Cannot delete category as it has associated products. Please delete or reassign them first.",
	)

	// Product-related errors
	ErrProductNameEmpty = NewValidationError("Product name cannot be empty.")

	ErrProductPriceInvalid = NewValidationError("Product price must be a non-negative number.")

	ErrProductTypeInvalid = NewValidationError("Invalid product type.")

	ErrProductCategoryRequired = NewValidationError("Product must be associated with a category.")

	ErrMultipleProductNeedsVariants = NewValidationError("Products of type 'multiple' must have at least one variant.")

	ErrSingleProductHasVariants = NewValidationError("Products of type 'single' cannot have variants.")

	ErrProductIDRequired = NewValidationError("Product ID must be provided.")

	ErrProductNotFound = NewNotFoundError("Product not found.")

	ErrProductCategoryNotFound = NewNotFoundError("The specified category does not exist.")

	ErrProductAlreadyExists = NewConflictError("A product with this name already exists in this category.")

	// Analytics-related errors
	ErrViewProductIDRequired = NewValidationError("Product ID must be provided for recording view.")

	ErrClickProductIDRequired = NewValidationError("Product ID must be provided for recording click.")

	ErrAddToCartProductIDRequired = NewValidationError("Product ID must be provided for recording add to cart.")

	ErrAnalyticsQuantityInvalid = NewValidationError("Quantity must be a positive number.")

	ErrViewProductInvalid = NewReferentialIntegrityError("Invalid Product ID. Cannot record view.")

	ErrClickProductInvalid = NewReferentialIntegrityError("Invalid Product ID. Cannot record click.")

	ErrAddToCartProductInvalid = NewReferentialIntegrityError("Invalid Product ID. Cannot record add to cart.")

	ErrAnalyticsWindowInvalid = NewValidationError("The analytics window start must not be after its end.")

	// Cart-related errors
	ErrCartEmpty = NewValidationError("The cart must contain at least one item.")

	ErrCartQuantityInvalid = NewValidationError("Quantity must be a positive number.")

	ErrCartOrderTypeInvalid = NewValidationError("Invalid order type.")

	ErrCartVariantInvalid = NewValidationError("The selected variant does not belong to this product.")

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Invalid input.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"Internal server error.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Authentication required.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"Access denied.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecuteFailed
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// IsExpected reports whether err carries a user-facing AppError that is not an internal failure.
func IsExpected(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}

	return appErr.HTTPCode() < http.StatusInternalServerError
}
