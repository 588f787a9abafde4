package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rkjewellers/billing-api/pkg/apperror"
)

// The wire format mirrors the original billing client's expectations: success
// bodies carry "message" (plus operation-specific fields), failures carry
// "error" with the HTTP status expressing the error class.

// Message sends a 200 response with a message body
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// MessageWithID sends a 200 response carrying a message and a record id
func MessageWithID(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
}

// OK sends a 200 response with an arbitrary body
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Error sends an error response with the status carried by the AppError
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}
