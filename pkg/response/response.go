package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with an error envelope.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Error: msg})
}

// InternalError sends 500 with an error envelope.
func InternalError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Error: msg})
}

// TooManyRequests sends 429 with an error envelope.
func TooManyRequests(c *gin.Context, msg string) {
	c.JSON(http.StatusTooManyRequests, Resp{Success: false, Error: msg})
}
