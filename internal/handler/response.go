package handler

// Response is the envelope every endpoint answers with. Code is filled
// only on errors.
type Response struct {
	Status  string      `json:"status"`
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewMessageResponse(message string) *Response {
	return &Response{
		Status:  "success",
		Message: message,
	}
}

func NewErrorResponse(code int, message string) *Response {
	return &Response{
		Status:  "error",
		Code:    code,
		Message: message,
	}
}
