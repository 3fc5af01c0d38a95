package msg

type Type uint

const (
	Undefined Type = iota
	Success
	Error
)

type ResponseMessage struct {
	Message string
	Type    Type
	Options *Options
}

// Response is what command handlers return for the transport to send back.
type Response struct {
	Messages []ResponseMessage
}

func NewResponse(messages ...ResponseMessage) *Response {
	return &Response{Messages: messages}
}

func SuccessResponse(message string) *Response {
	return NewResponse(ResponseMessage{Message: message, Type: Success})
}

func ErrorResponse(message string) *Response {
	return NewResponse(ResponseMessage{Message: message, Type: Error})
}
