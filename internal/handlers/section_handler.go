package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"testseries-service/internal/models"
	"testseries-service/internal/service"
)

type SectionHandler struct {
	Service *service.SectionService
}

func NewSectionHandler(s *service.SectionService) *SectionHandler {
	return &SectionHandler{Service: s}
}

func (h *SectionHandler) GetSection(c *gin.Context) {
	section, err := h.Service.GetSection(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *SectionHandler) ListByTest(c *gin.Context) {
	sections, err := h.Service.ListByTest(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var section models.Section
	if err := c.ShouldBindJSON(&section); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateSection(context.Background(), &section); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateSection(context.Background(), c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	if err := h.Service.DeleteSection(context.Background(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
