package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// --- Response Types ---

// Envelope wraps every response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// --- Success Response Helpers ---

// respondSuccess sends a success envelope with an optional message and data.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// --- Error Response Helpers ---

// respondFail sends a fail envelope with the given status code.
func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Status: StatusFail, Message: message})
}

// respondBadRequest sends a 400 fail envelope.
func respondBadRequest(c *gin.Context, message string) {
	respondFail(c, http.StatusBadRequest, message)
}

// respondNotFound sends a 404 fail envelope.
func respondNotFound(c *gin.Context, message string) {
	respondFail(c, http.StatusNotFound, message)
}

// respondInternalError logs the error and sends a 500 fail envelope.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, message string) {
	log.Printf("Internal error (%s %s): %v", c.Request.Method, c.Request.URL.Path, err)
	respondFail(c, http.StatusInternalServerError, message)
}
