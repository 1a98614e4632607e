package api

import (
	"net/http"

	"github.com/ayish1998/UpPaws-sub002/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListSpecies returns the full species catalog with config stats applied.
func (h *BattleHandler) ListSpecies(c *gin.Context) {
	species, err := h.repo.GetSpecies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSpecies})
		return
	}
	c.JSON(http.StatusOK, species)
}
