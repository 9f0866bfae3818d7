package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/narrniar/simple-status-task/internal/dto"
	"github.com/narrniar/simple-status-task/internal/services"

	"github.com/gin-gonic/gin"
)

// Error translation: every failure leaves through here as the uniform
// ErrorResponse envelope, with a deterministic status per error kind.

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, message, c.Request.URL.Path))
}

func respondValidationFailed(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
		http.StatusBadRequest, "Validation failed", details, c.Request.URL.Path))
}

func respondMalformedJSON(c *gin.Context, err error) {
	log.Printf("Malformed JSON request: %v", err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		http.StatusBadRequest, "Malformed JSON request", c.Request.URL.Path))
}

func respondTypeMismatch(c *gin.Context, param, value, expectedType string) {
	message := "Invalid value '" + value + "' for parameter '" + param + "'. Expected type: " + expectedType
	log.Printf("Parameter type mismatch: %s", message)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, c.Request.URL.Path))
}

func respondIllegalArgument(c *gin.Context, err error) {
	log.Printf("Illegal argument: %v", err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), c.Request.URL.Path))
}

// handleTaskError maps service failures onto the wire. Anything that is not
// a NotFoundError is logged with full detail and redacted for the client.
func handleTaskError(c *gin.Context, err error) {
	var notFound services.NotFoundError
	if errors.As(err, &notFound) {
		log.Printf("Task not found: %v", notFound)
		respondNotFound(c, notFound.Error())
		return
	}

	log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		http.StatusInternalServerError, "Internal server error occurred", c.Request.URL.Path))
}
