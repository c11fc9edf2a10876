package worldstate

type Code string

const (
	CodeOK                Code = "OK"
	CodeAlreadyClaimed    Code = "ALREADY_CLAIMED"
	CodeOutOfRange        Code = "OUT_OF_RANGE"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
	CodeNotYours          Code = "NOT_YOURS"
	CodeInventoryFull     Code = "INVENTORY_FULL"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidState      Code = "INVALID_STATE"
)

// Outcome is the result-style return of every gameplay operation. Failed
// attempts are data, not errors: the scheduler treats them as no-ops and
// the HTTP layer surfaces Message as-is.
type Outcome struct {
	Success bool           `json:"success"`
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func succeed(message string, data map[string]any) Outcome {
	return Outcome{Success: true, Code: CodeOK, Message: message, Data: data}
}

func fail(code Code, message string) Outcome {
	return Outcome{Success: false, Code: code, Message: message}
}
