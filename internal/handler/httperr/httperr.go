// Package httperr defines the error envelope every non-2xx response uses, so
// staff devices can parse failures uniformly across booking, fulfillment and
// voucher endpoints.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the client-facing envelope. Status stays out of the body; the
// HTTP status line already carries it.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and records the underlying error on the
// gin context so the logging middleware sees the cause, not the client copy.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil cause")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
