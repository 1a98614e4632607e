package api

import (
	"net/http"

	"github.com/ayish1998/UpPaws-sub002/internal/version"
	"github.com/gin-gonic/gin"
)

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
