package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// Version is the only protocol version accepted.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is a single JSON-RPC call.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// IsNotification reports whether the caller expects no response.
// An explicit "id": null is still a call.
func (r Request) IsNotification() bool {
	return len(r.ID) == 0
}

// Validate checks the envelope fields.
func (r Request) Validate() *Error {
	if r.JSONRPC != Version {
		return NewError(CodeInvalidRequest, "Invalid Request", nil)
	}
	if r.Method == "" {
		return NewError(CodeInvalidRequest, "Invalid Request", nil)
	}
	return nil
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewError builds an Error.
func NewError(code int, message string, data any) *Error {
	return &Error{Code: code, Message: message, Data: data}
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Response is a single JSON-RPC reply. Exactly one of Result or Error is
// encoded.
type Response struct {
	ID     json.RawMessage
	Result any
	Error  *Error
}

// NewResult builds a success response for id.
func NewResult(id json.RawMessage, result any) Response {
	return Response{ID: id, Result: result}
}

// NewErrorResponse builds an error response for id.
func NewErrorResponse(id json.RawMessage, err *Error) Response {
	return Response{ID: id, Error: err}
}

type successBody struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result"`
	ID      json.RawMessage `json:"id"`
}

type errorBody struct {
	JSONRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	ID      json.RawMessage `json:"id"`
}

// MarshalJSON implements json.Marshaler.
func (r Response) MarshalJSON() ([]byte, error) {
	id := r.ID
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	if r.Error != nil {
		return json.Marshal(errorBody{JSONRPC: Version, Error: r.Error, ID: id})
	}
	return json.Marshal(successBody{JSONRPC: Version, Result: r.Result, ID: id})
}
