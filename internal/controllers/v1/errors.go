package v1

import (
	"errors"
	"net/http"

	"github.com/hearthshare/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrNoSuchPayer) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrNotBillCreator) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

var (
	errCounterpartyParameter = errors.New("the counterparty parameter must be set")
	errGroupByInvalid        = errors.New("the groupBy parameter must be 'counterparty' or 'date'")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for deleting all settlements was incorrect")
)
