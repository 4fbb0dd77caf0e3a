package core

// error_messages.go maps row error codes and run failures to user-friendly
// messages with codes for support reference.
//
// # Row Codes (E01-E07)
//
// Attached to individual rows; see Describe.
//
// # Run Errors
//
// Failures of a whole run, matched case-insensitively against the error
// text; the first matching pattern wins:
//
//	FILE001 - File not found             Patterns: "no such file"
//	FILE002 - Invalid file               Patterns: "parse error", "not a valid zip file"
//	FILE003 - Unsupported file type      Patterns: "unsupported file type"
//	FILE004 - Empty file                 Patterns: "empty file"
//	FILE005 - Sheet not found            Patterns: "read sheet"
//	VAL001  - Missing column             Patterns: "missing required column"
//	VAL002  - Invalid rows               Patterns: "invalid rows"
//	CFG001  - Bad configuration          Patterns: "config defaults:", "config file:",
//	                                               "config load:", "config validation:"
//	RUN001  - Run cancelled              Patterns: "context canceled"
//	RUN002  - Run timed out              Patterns: "context deadline exceeded"
//	ERR000  - Unknown error (fallback)

import "strings"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

var codeMessages = map[ErrorCode]UserMessage{
	CodeInvalidPID: {
		Message: "PID contains invalid characters",
		Action:  "Use only letters, digits, dashes and underscores",
	},
	CodeInvalidDocType: {
		Message: "Document type contains invalid characters",
		Action:  "Use only letters, digits, dashes and underscores",
	},
	CodeMissingDocType: {
		Message: "No document type specified",
		Action:  "Fill in the document type column",
	},
	CodeInvalidURL: {
		Message: "URL is not a valid web address",
		Action:  "Use a full http:// or https:// address",
	},
	CodeInvalidEnabled: {
		Message: "Enabled is not 0 or 1",
		Action:  "Set enabled to 1 to publish the row or 0 to skip it",
	},
	CodeURLUnreachable: {
		Message: "URL is unavailable",
		Action:  "Check that the target page is online and answers with 200 OK",
	},
	CodeDuplicate: {
		Message: "PID and document type combination is a duplicate",
		Action:  "Remove or change one of the duplicate rows",
	},
}

// Describe returns the message for a row error code.
func Describe(code ErrorCode) UserMessage {
	msg, ok := codeMessages[code]
	if !ok {
		return UserMessage{Message: "Unknown row error", Action: "Please contact support", Code: string(code)}
	}
	msg.Code = string(code)
	return msg
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// Specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{"no such file", UserMessage{"File not found", "Check the path and try again", "FILE001"}},
	{"parse error", UserMessage{"File is not a valid CSV", "Ensure the file is comma-separated with quoted fields where needed", "FILE002"}},
	{"not a valid zip file", UserMessage{"File is not a valid workbook", "Save the file as .xlsx or .csv", "FILE002"}},
	{"unsupported file type", UserMessage{"File type is not supported", "Use a .csv or .xlsx file", "FILE003"}},
	{"empty file", UserMessage{"The file is empty", "Provide a file with a header row and data rows", "FILE004"}},
	{"read sheet", UserMessage{"Worksheet not found", "Check the sheet name", "FILE005"}},
	{"missing required column", UserMessage{"Required column is missing", "Check that the header names match the configured column names", "VAL001"}},
	{"invalid rows", UserMessage{"The dataset contains invalid rows", "Fix the rows flagged in the report, or enable CSV_IGNORE_ON_INVALID_DATA", "VAL002"}},
	{"config defaults:", configMessage},
	{"config file:", configMessage},
	{"config load:", configMessage},
	{"config validation:", configMessage},
	{"context canceled", UserMessage{"Run was cancelled", "Start the check again when ready", "RUN001"}},
	{"context deadline exceeded", UserMessage{"Run timed out", "Try again or disable URL probing", "RUN002"}},
}

var configMessage = UserMessage{"Configuration is invalid", "Review environment variables and the config file", "CFG001"}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for nil errors.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(errStr, p.pattern) {
			return p.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders a UserMessage as one line for terminal output.
func FormatUserError(msg UserMessage) string {
	if msg.Action == "" {
		return msg.Message + " (" + msg.Code + ")"
	}
	return msg.Message + ". " + msg.Action + " (" + msg.Code + ")"
}
