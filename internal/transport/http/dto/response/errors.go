package response

var (
	ErrFileRequired = ErrorResponse{
		Status:  "error",
		Error:   "file_required",
		Details: "File is required",
	}

	ErrItemNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Gallery item not found",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
