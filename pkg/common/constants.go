package common

const (
	RequestIDHeader = "X-Request-Id"

	// FormContentField and FormFileField are the multipart field names the
	// moderation endpoints read.
	FormContentField = "content"
	FormFileField    = "file"

	MB = 1 << 20
)
