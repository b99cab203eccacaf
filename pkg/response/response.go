package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"insight-srv/pkg/discord"
	pkgErrors "insight-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err to the client. HTTPError and validation errors keep their
// status; anything else is a 500 and gets reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var vErr *pkgErrors.ValidationErrorCollector
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, Resp{
			ErrorCode: ErrCodeValidation,
			Message:   "Validation failed",
			Errors:    vErr.Errors(),
		})
		return
	}

	reportToDiscord(c.Request.Context(), d, c, err.Error(), "")
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrCodeInternal,
		Message:   "Something went wrong",
	})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	err := pkgErrors.NewUnauthorizedHTTPError()
	c.JSON(err.StatusCode, Resp{ErrorCode: err.Code, Message: err.Message})
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context) {
	err := pkgErrors.NewForbiddenHTTPError()
	c.JSON(err.StatusCode, Resp{ErrorCode: err.Code, Message: err.Message})
}

// PanicError writes a 500 for a recovered panic and reports the stack to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	var msg string
	if err, ok := recovered.(error); ok {
		msg = err.Error()
	} else {
		msg = fmt.Sprint(recovered)
	}
	reportToDiscord(c.Request.Context(), d, c, msg, string(debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrCodeInternal,
		Message:   "Something went wrong",
	})
}

func reportToDiscord(ctx context.Context, d discord.IDiscord, c *gin.Context, msg, stack string) {
	if d == nil {
		return
	}
	body := fmt.Sprintf("%s %s\n%s", c.Request.Method, c.Request.URL.Path, msg)
	if stack != "" {
		if len(stack) > 1500 {
			stack = stack[:1500]
		}
		body += "\n```" + stack + "```"
	}
	_ = d.ReportBug(ctx, body)
}
