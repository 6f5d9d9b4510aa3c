package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
	"github.com/wazeer/wazeer_backend/internal/middleware"
)

// materialHandler handles HTTP requests for the material price list.
type materialHandler struct {
	materialService portssvc.MaterialSvcFacade
}

func newMaterialHandler(ms portssvc.MaterialSvcFacade) *materialHandler {
	return &materialHandler{materialService: ms}
}

// registerMaterialRoutes registers routes related to materials.
func registerMaterialRoutes(rg *gin.RouterGroup, materialService portssvc.MaterialSvcFacade) {
	h := newMaterialHandler(materialService)

	materials := rg.Group("/materials")
	{
		materials.GET("", h.listMaterials)
		materials.POST("", h.createMaterial)
		materials.PUT("/:id", h.updateMaterial)
		materials.DELETE("/:id", h.deleteMaterial)
	}
}

// listMaterials godoc
// @Summary List materials
// @Description Retrieves the price list ordered by name
// @Tags materials
// @Produce json
// @Success 200 {array} dto.MaterialResponse
// @Failure 500 {object} map[string]string "Failed to list materials"
// @Security BearerAuth
// @Router /materials [get]
func (h *materialHandler) listMaterials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	materials, err := h.materialService.ListMaterials(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list materials", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list materials"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMaterialResponse(materials))
}

// createMaterial godoc
// @Summary Create a material
// @Description Adds a material to the price list
// @Tags materials
// @Accept json
// @Produce json
// @Param material body dto.CreateMaterialRequest true "Material details"
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Material already exists"
// @Security BearerAuth
// @Router /materials [post]
func (h *materialHandler) createMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMaterial", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	material, err := h.materialService.CreateMaterial(c.Request.Context(), req, principal)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Material already exists"})
		default:
			logger.Error("Failed to create material", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaterialResponse(material))
}

// updateMaterial godoc
// @Summary Update a material
// @Description Changes a material's name, price or unit
// @Tags materials
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param material body dto.UpdateMaterialRequest true "Fields to update"
// @Success 200 {object} dto.MaterialResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [put]
func (h *materialHandler) updateMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	materialID := c.Param("id")

	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateMaterial", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	material, err := h.materialService.UpdateMaterial(c.Request.Context(), materialID, req, principal)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Material already exists"})
		default:
			logger.Error("Failed to update material", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialResponse(material))
}

// deleteMaterial godoc
// @Summary Delete a material
// @Description Removes a material from the price list (super admin only)
// @Tags materials
// @Produce json
// @Param id path string true "Material ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [delete]
func (h *materialHandler) deleteMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	materialID := c.Param("id")

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.materialService.DeleteMaterial(c.Request.Context(), materialID, principal); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only super admins may delete"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		default:
			logger.Error("Failed to delete material", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete material"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
