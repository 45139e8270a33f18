package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidArguments   ErrorCode = "InvalidArguments"
	InvalidIndentFlag  ErrorCode = "InvalidIndentFlag"
	MissingIndexNowKey ErrorCode = "MissingIndexNowKey"
	UnknownHost        ErrorCode = "UnknownHost"
	PartOutOfRange     ErrorCode = "PartOutOfRange"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
