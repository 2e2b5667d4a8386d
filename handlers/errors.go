package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"options-tracker/config"
	"options-tracker/ledger"
)

// ledgerError maps the ledger's error kinds onto HTTP statuses: validation
// reasons go back verbatim, missing/foreign records are a uniform 404, and
// anything else is logged and surfaced opaquely.
func ledgerError(c *gin.Context, err error, fallback string) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
	default:
		internalError(c, err, fallback)
	}
}

func internalError(c *gin.Context, err error, fallback string) {
	config.Logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
