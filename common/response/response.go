package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body: success flag plus, depending on the
// outcome, data, a human message, or an error string. Debug carries the raw
// underlying error and is only populated outside production.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Debug   string      `json:"debug,omitempty"`
}

var debugEnabled bool

// EnableDebug turns on the diagnostic field for non-production environments.
func EnableDebug(on bool) {
	debugEnabled = on
}

// Data writes a success envelope with a payload.
func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// Message writes a success envelope with only a message.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: true, Message: msg})
}

// Fail writes a failure envelope.
func Fail(c *gin.Context, status int, errMsg string) {
	c.JSON(status, Envelope{Success: false, Error: errMsg})
}

// FailWithData writes a failure envelope with a payload, used when the error
// carries details the client needs (e.g. available stock).
func FailWithData(c *gin.Context, status int, errMsg string, data interface{}) {
	c.JSON(status, Envelope{Success: false, Error: errMsg, Data: data})
}

// FailDebug writes a failure envelope, attaching cause outside production.
func FailDebug(c *gin.Context, status int, errMsg string, cause error) {
	env := Envelope{Success: false, Error: errMsg}
	if debugEnabled && cause != nil {
		env.Debug = cause.Error()
	}
	c.JSON(status, env)
}
