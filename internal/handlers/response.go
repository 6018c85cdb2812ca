package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paavkar/AgricultureApp/internal/errs"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// respondResult writes a service envelope. Failed envelopes carry the
// transport status resolved by the error model; successful ones use
// okStatus.
func respondResult(c *gin.Context, okStatus int, base types.BaseResult, payload any) {
	if !base.Succeeded {
		status := base.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, payload)
		return
	}
	c.JSON(okStatus, payload)
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, types.BaseResult{
		Succeeded: false,
		Code:      "unauthorized",
		Errors:    []string{"missing or invalid credentials"},
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, types.BaseResult{
		Succeeded: false,
		Code:      "invalid_request_body",
		Errors:    []string{err.Error()},
	})
}

func respondIDMismatch(c *gin.Context) {
	c.JSON(http.StatusBadRequest, types.Fail(
		errs.Validation(errs.CodeIDMismatch, "path id does not match body id")))
}

func respondInvalidID(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, types.BaseResult{
		Succeeded: false,
		Code:      "invalid_id",
		Errors:    []string{name + " is not a valid id"},
	})
}
