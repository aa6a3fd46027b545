package serverutils

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Warning string      `json:"warning,omitempty"`
}

func SuccessResponse(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// SuccessResponseWithWarning reports a committed operation with a non-fatal
// condition attached (e.g. a reconciler failure after a submit).
func SuccessResponseWithWarning(message string, data interface{}, warning string) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
		Warning: warning,
	}
}

func ErrorResponse(message string) *Response {
	return &Response{
		Success: false,
		Message: message,
	}
}
