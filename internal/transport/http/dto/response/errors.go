package response

// Canonical error envelopes. Error strings are the taxonomy names the
// UI layer displays; Details may add safe context but never raw driver
// output.
func Unauthorized() ErrorResponse {
	return ErrorResponse{Status: "error", Error: "Unauthorized"}
}

func NotFound() ErrorResponse {
	return ErrorResponse{Status: "error", Error: "NotFound"}
}

func Conflict(details string) ErrorResponse {
	return ErrorResponse{Status: "error", Error: "Conflict", Details: details}
}

func StorageUnavailable() ErrorResponse {
	return ErrorResponse{Status: "error", Error: "StorageUnavailable"}
}

func ValidationFailed(details string) ErrorResponse {
	return ErrorResponse{Status: "error", Error: "ValidationFailed", Details: details}
}
