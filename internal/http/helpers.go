package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/libris-project/libris/internal/catalog"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondCatalogError maps the catalog error taxonomy onto HTTP statuses:
// validation failures become 400, missing records 404, and storage
// failures a generic 500.
func respondCatalogError(c *gin.Context, err error, context string) {
	switch {
	case catalog.IsValidation(err):
		respondBadRequest(c, err.Error())
	case catalog.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		respondInternalError(c, err, context)
	}
}

// statusForCatalogError returns the HTTP status for a catalog error when
// rendering an HTML page instead of a JSON body.
func statusForCatalogError(err error) int {
	switch {
	case catalog.IsValidation(err):
		return http.StatusBadRequest
	case catalog.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageForCatalogError picks the user-facing message for a form page.
// Validation problems are shown as-is; storage failures collapse into the
// generic fallback so driver details never reach the page.
func messageForCatalogError(err error, fallback string) string {
	if catalog.IsValidation(err) || catalog.IsNotFound(err) {
		return err.Error()
	}
	log.Printf("Internal error: %v", err)
	return fallback
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Returns the parsed ID or responds with a 400 error and
// returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
