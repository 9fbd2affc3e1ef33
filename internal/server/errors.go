package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/veridia/identity/api"
	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/logging"
	"github.com/veridia/identity/internal/server/data"
	"github.com/veridia/identity/internal/server/redis"
	"github.com/veridia/identity/internal/validate"
)

func sendAPIError(c *gin.Context, err error) {
	resp := &api.Error{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	}

	validationErrors := validate.Error{}
	uniqueConstraintError := data.UniqueConstraintError{}
	overLimitError := redis.OverLimitError{}

	switch {
	case errors.Is(err, internal.ErrUnauthorized):
		resp.Code = http.StatusUnauthorized
		resp.Message = "unauthorized"
	case errors.As(err, &uniqueConstraintError):
		resp.Code = http.StatusConflict
		resp.Message = err.Error()
	case errors.Is(err, internal.ErrInvalidResetToken):
		resp.Code = http.StatusBadRequest
		resp.Message = internal.ErrInvalidResetToken.Error()
	case errors.Is(err, internal.ErrNotFound):
		resp.Code = http.StatusNotFound
		resp.Message = "record not found"
	case errors.As(err, &validationErrors):
		resp.Code = http.StatusBadRequest
		resp.Message = "validation failed"
		fields := make([]string, 0, len(validationErrors))
		for field := range validationErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			resp.FieldErrors = append(resp.FieldErrors, api.FieldError{
				FieldName: field,
				Errors:    validationErrors[field],
			})
		}
	case errors.Is(err, internal.ErrBadRequest):
		resp.Code = http.StatusBadRequest
		resp.Message = err.Error()
	case errors.As(err, &overLimitError):
		resp.Code = http.StatusTooManyRequests
		resp.Message = "too many requests"
		seconds := int64(math.Ceil(overLimitError.RetryAfter.Seconds()))
		c.Header("Retry-After", fmt.Sprintf("%d", seconds))
	case errors.Is(err, context.DeadlineExceeded):
		resp.Code = http.StatusGatewayTimeout
		resp.Message = "request timed out"
	}

	if resp.Code >= 500 {
		logging.Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
	} else {
		logging.Debugf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
	}

	c.AbortWithStatusJSON(int(resp.Code), resp)
}
