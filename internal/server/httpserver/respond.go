package httpserver

import "github.com/gin-gonic/gin"

// errorJSON renders the error body the clients parse: {"message": "..."}.
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
