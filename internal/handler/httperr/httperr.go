package httperr

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope every handler writes:
// {"error":{"message":"..."},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the envelope and keeps err on the context so the
// error middleware can log the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortRetryable answers 503 with a Retry-After hint in whole seconds.
func AbortRetryable(c *gin.Context, err error, msg string, after time.Duration) {
	secs := int(after / time.Second)
	if secs < 1 {
		secs = 1
	}
	c.Header("Retry-After", strconv.Itoa(secs))
	AbortWithError(c, http.StatusServiceUnavailable, err, msg, nil)
}
