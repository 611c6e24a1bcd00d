package errors

// Error code constants returned in the "code" field of error responses.
// Format: CATEGORY_SPECIFIC_DETAIL; clients map these to display messages.
const (
	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources
	VendorNotFound   = "VENDOR_NOT_FOUND"
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// Uploads
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
