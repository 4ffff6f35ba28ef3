package response

import "github.com/gin-gonic/gin"

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Kind    string      `json:"kind,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response. err is optional detail appended to
// the message.
func Error(c *gin.Context, code int, message string, err error) {
	if err != nil {
		message = message + ": " + err.Error()
	}
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorKind sends an error response carrying the machine-readable
// error classification alongside the human-readable message.
func ErrorKind(c *gin.Context, code int, kind, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Kind:    kind,
	})
}
