package message

const (
	InvalidInput     = "Invalid input."
	InvalidToken     = "Invalid or expired token."
	SomethingWrong   = "Something went wrong."
	EnvErrFmt        = "environment variable is not set: %s"
	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
