package api

import (
	"errors"
	"net/http"

	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"
	"github.com/ayish1998/UpPaws-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBattleRequest starts a new battle. With two teams the battle begins
// immediately (the second side is usually AI-driven); with one team it waits
// for an opponent to join via the returned code.
type CreateBattleRequest struct {
	Kind  string                `json:"kind"`
	Teams []service.TeamRequest `json:"teams"`
}

type JoinBattleRequest struct {
	JoinCode string              `json:"join_code"`
	Team     service.TeamRequest `json:"team"`
}

// CreateBattle assembles teams from the species catalog and persists a new
// battle, handing back the aggregate and its join code.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req CreateBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	kind := game.BattleKind(req.Kind)
	if kind == "" {
		kind = game.BattleTrainer
	}
	code := generateJoinCode()

	var b *game.Battle
	var err error
	switch len(req.Teams) {
	case 1:
		b, err = service.CreateOpenBattle(h.repo, h.cfg, kind, code, req.Teams[0])
	case 2:
		b, err = service.CreateBattle(h.repo, h.cfg, kind, code, req.Teams)
	default:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err != nil {
		writeBattleBuildError(c, err)
		return
	}

	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleID:   b.ID,
		constants.LogFieldBattleCode: b.JoinCode,
	})
	c.JSON(http.StatusCreated, b)
}

// JoinBattle fills the open slot of a waiting battle and starts it.
func (h *BattleHandler) JoinBattle(c *gin.Context) {
	var req JoinBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code := normalizeJoinCode(req.JoinCode)
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}

	b, err := service.JoinBattle(h.repo, h.cfg, code, req.Team)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBattleNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case errors.Is(err, service.ErrBattleNotJoinable):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotJoinable})
		default:
			writeBattleBuildError(c, err)
		}
		return
	}

	logging.Info("battle joined", logging.Fields{
		constants.LogFieldBattleID:   b.ID,
		constants.LogFieldBattleCode: b.JoinCode,
	})
	c.JSON(http.StatusOK, b)
}

// GetBattle returns the full battle aggregate for a join code.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	b, ok := h.battleByCode(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBattleLog returns the chronological move records of a battle.
func (h *BattleHandler) GetBattleLog(c *gin.Context) {
	b, ok := h.battleByCode(c)
	if !ok {
		return
	}
	records, err := h.repo.GetBattleRecords(b.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLog})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *BattleHandler) battleByCode(c *gin.Context) (*game.Battle, bool) {
	code := normalizeJoinCode(c.Param("battleCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return nil, false
	}
	b, err := h.repo.FindBattleByJoinCode(code)
	if err != nil || b == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return nil, false
	}
	return b, true
}

// writeBattleBuildError maps team-assembly failures onto HTTP statuses.
func writeBattleBuildError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownSpecies):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownSpecies})
	case errors.Is(err, service.ErrUnknownMove), errors.Is(err, service.ErrMoveNotLearnable):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownMove})
	case errors.Is(err, game.ErrTeamTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTeamTooLarge})
	case errors.Is(err, game.ErrEmptyTeam), errors.Is(err, game.ErrNeedTwoTeams):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTeamEmpty})
	default:
		logging.Error("battle creation failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle})
	}
}
