package httperr

import (
	"errors"

	"bookify/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring; a nil err is recorded as msg
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
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

// Rule maps a sentinel error to the status and public message it is reported with.
type Rule struct {
	Target  error
	Status  int
	Message string
}

// AbortWithRules reports err with the first matching rule, falling back to
// fallbackStatus and fallbackMsg when none matches.
func AbortWithRules(c *gin.Context, err error, rules []Rule, fallbackStatus int, fallbackMsg string) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			AbortWithError(c, r.Status, err, r.Message, nil)
			return
		}
	}
	AbortWithError(c, fallbackStatus, err, fallbackMsg, nil)
}
