package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"testseries-service/internal/service"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

type startAttemptRequest struct {
	TestID string `json:"test_id" binding:"required"`
}

func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req startAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	started, err := h.Service.StartAttempt(context.Background(), uid, req.TestID)
	if err != nil {
		respondError(c, err)
		return
	}
	if started.Resumed {
		c.JSON(http.StatusOK, started)
		return
	}
	c.JSON(http.StatusCreated, started)
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	attempt, answers, err := h.Service.GetAttempt(context.Background(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": attempt, "answers": answers})
}

func (h *AttemptHandler) ListMyAttempts(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	attempts, err := h.Service.ListAttempts(context.Background(), uid, c.Query("test_id"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

func (h *AttemptHandler) RecordAnswer(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req service.RecordAnswerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	answer, err := h.Service.RecordAnswer(context.Background(), uid, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

type submitAttemptRequest struct {
	Auto bool `json:"auto"`
}

func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req submitAttemptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	result, err := h.Service.SubmitAttempt(context.Background(), uid, c.Param("id"), req.Auto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
