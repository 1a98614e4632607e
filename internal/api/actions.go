package api

import (
	"errors"
	"net/http"

	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

// ActionRequest carries one tamer action for the current turn.
type ActionRequest struct {
	TamerName    string `json:"tamer_name"`
	ActionType   string `json:"action_type"`
	Slot         int    `json:"slot"`
	MoveSlot     int    `json:"move_slot"`
	SwitchToSlot int    `json:"switch_to_slot"`
}

// SubmitAction resolves a tamer's action and any immediate AI reply, then
// returns the updated battle alongside the ordered outcomes.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	b, ok := h.battleByCode(c)
	if !ok {
		return
	}
	if b.State != game.BattleInProgress {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotInProgress})
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	act := game.Action{
		Type:         game.ActionType(req.ActionType),
		Slot:         req.Slot,
		MoveSlot:     req.MoveSlot,
		SwitchToSlot: req.SwitchToSlot,
	}
	b2, outcomes, err := service.SubmitAction(h.repo, h.cfg, b.ID, req.TamerName, act, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBattleNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case errors.Is(err, service.ErrBattleNotInProgress), errors.Is(err, engine.ErrBattleNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotInProgress})
		case errors.Is(err, service.ErrParticipantNotInBattle):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrParticipantNotFound})
		case errors.Is(err, engine.ErrInvalidParticipant),
			errors.Is(err, engine.ErrInvalidSlot),
			errors.Is(err, engine.ErrUnknownActionType):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"battle":   b2,
		"outcomes": outcomes,
	})
}
