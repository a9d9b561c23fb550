package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"testseries-service/internal/service"
)

type ResultHandler struct {
	Service *service.ResultService
	Ranker  *service.RankingService
}

func NewResultHandler(s *service.ResultService, ranker *service.RankingService) *ResultHandler {
	return &ResultHandler{Service: s, Ranker: ranker}
}

func (h *ResultHandler) GetResult(c *gin.Context) {
	result, err := h.Service.GetResult(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResultHandler) GetResultByAttempt(c *gin.Context) {
	result, err := h.Service.GetResultByAttempt(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResultHandler) GetResultsByUser(c *gin.Context) {
	results, err := h.Service.GetResultsByUser(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	results, err := h.Service.Leaderboard(context.Background(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RecomputeRanks re-ranks a whole test's result set, for use after regrades
// or late submissions.
func (h *ResultHandler) RecomputeRanks(c *gin.Context) {
	if err := h.Ranker.RankAll(context.Background(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recomputed": true})
}
