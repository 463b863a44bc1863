// Package controllers handles the HTTP requests of the API.
package controllers

import (
	"errors"
	"net/http"

	"github.com/despesas/backend/internal/httputil"
	"github.com/despesas/backend/internal/models"
	"github.com/despesas/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// status returns the appropriate HTTP status for a store error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errInvalidUUID    = errors.New("the ID specified in the URL is not a valid UUID")
	errInvalidMonth   = errors.New("the month must be specified as YYYY-MM")
	errPeriodRequired = errors.New("the from and to query parameters must be set")
)

// parseID parses the named URI parameter as a UUID, answering the request
// itself when the parameter is invalid.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errInvalidUUID)
		return uuid.Nil, false
	}

	return id, true
}

// parseMonth parses the named URI parameter as a YYYY-MM month.
func parseMonth(c *gin.Context, param string) (types.Month, bool) {
	month, err := types.ParseMonth(c.Param(param))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errInvalidMonth)
		return types.Month{}, false
	}

	return month, true
}
