package response

// Resp is the JSON body of the non-RPC routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	MessageSuccess         = "Success"
	UnauthorizedCode       = 401
	TooManyRequestsCode    = 429
	ServiceUnavailableCode = 503
)
