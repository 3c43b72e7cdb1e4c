package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {"error": bool, "message": ..., <payload fields>}.

func Success(c *gin.Context, statusCode int, message string, payload gin.H) {
	body := gin.H{
		"error":   false,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// ValidationError reports field-level validation failures. The field map
// rides in the message field, matching the envelope's validation shape.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   true,
		"message": fields,
	})
}
