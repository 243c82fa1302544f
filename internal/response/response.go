// Package response implements the uniform JSON envelope shared by every
// endpoint. Success and failure bodies always carry the same top-level
// shape, so clients never special-case the transport.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

// Pagination describes one page of a filtered, ordered result set.
type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paginated writes a 200 success envelope with pagination metadata.
func Paginated(c *gin.Context, message string, items interface{}, p *Pagination) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       items,
		Pagination: p,
	})
}

// Error writes a failure envelope. errs is a field -> messages map for
// validation failures, or nil for everything else (serialized as []).
func Error(c *gin.Context, status int, message string, errs interface{}) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// AbortWithError writes a failure envelope and stops the handler chain.
// Used by middleware (auth, rate limiting) where later handlers must not run.
func AbortWithError(c *gin.Context, status int, message string, errs interface{}) {
	if errs == nil {
		errs = []string{}
	}
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
