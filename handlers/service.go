package handlers

import (
	"net/http"

	groomserviceRepo "pawspa/database/repository/groomservice"
	"pawspa/models"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the grooming service catalog.
type ServiceHandler struct {
	Services groomserviceRepo.GroomServiceRepository
	Logger   *zap.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(services groomserviceRepo.GroomServiceRepository, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Services: services, Logger: logger}
}

// ListServicesHandler handles GET /api/services. Clients only see active
// services; admins pass ?all=true to include retired ones.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	services, err := h.Services.GetAll(c.Request.Context(), activeOnly)
	if err != nil {
		h.Logger.Error("ListServices: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var req models.GroomServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc := models.GroomService{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	id, err := h.Services.Create(c.Request.Context(), svc)
	if err != nil {
		h.Logger.Error("CreateService: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	svc.ID = id
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	var req models.GroomServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id := c.Param("id")
	existing, err := h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "service not found", id)
		return
	}

	svc := models.GroomService{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          existing.Active,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if err := h.Services.Update(c.Request.Context(), id, svc); err != nil {
		h.Logger.Error("UpdateService: failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id. Services are
// retired rather than removed so historical appointments keep resolving.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "service not found", id)
		return
	}

	existing.Active = false
	if err := h.Services.Update(c.Request.Context(), id, *existing); err != nil {
		h.Logger.Error("DeleteService: failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to retire service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": id})
}
