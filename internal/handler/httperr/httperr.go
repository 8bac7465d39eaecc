package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every non-2xx reply uses.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError writes the public envelope and attaches the cause to the
// gin error stack for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
