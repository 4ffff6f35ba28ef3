package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
	"github.com/sudhirerahul/taxi-analytics-go/pkg/response"
)

// writeQueryError maps the query error taxonomy onto HTTP statuses.
// Every failure carries a machine-readable kind plus a message.
func writeQueryError(c *gin.Context, err error) {
	var qe *models.QueryError
	if !errors.As(err, &qe) {
		response.ErrorKind(c, http.StatusInternalServerError,
			string(models.KindStoreUnavailable), err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch qe.Kind {
	case models.KindInvalidDescriptor:
		status = http.StatusBadRequest
	case models.KindResultTooLarge:
		status = http.StatusUnprocessableEntity
	case models.KindTimeout:
		status = http.StatusGatewayTimeout
	case models.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	}
	response.ErrorKind(c, status, string(qe.Kind), qe.Message)
}
