package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	petRepo "pawspa/database/repository/pet"
	"pawspa/models"
	"pawspa/services/storage"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PetHandler exposes pet registration and photo upload.
type PetHandler struct {
	Pets       petRepo.PetRepository
	StorageSvc storage.StorageService
	Logger     *zap.Logger
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(pets petRepo.PetRepository, storageSvc storage.StorageService, logger *zap.Logger) *PetHandler {
	return &PetHandler{Pets: pets, StorageSvc: storageSvc, Logger: logger}
}

// RegisterPetHandler handles POST /api/pets.
func (h *PetHandler) RegisterPetHandler(c *gin.Context) {
	var req models.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	pet := models.Pet{
		OwnerID: c.GetString("userID"),
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Weight:  req.Weight,
		Notes:   req.Notes,
	}
	id, err := h.Pets.Create(c.Request.Context(), pet)
	if err != nil {
		h.Logger.Error("RegisterPet: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to register pet", err.Error())
		return
	}
	pet.ID = id
	c.JSON(http.StatusCreated, pet)
}

// ListPetsHandler handles GET /api/pets.
func (h *PetHandler) ListPetsHandler(c *gin.Context) {
	pets, err := h.Pets.GetByOwner(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("ListPets: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch pets", err.Error())
		return
	}
	c.JSON(http.StatusOK, pets)
}

// UpdatePetHandler handles PUT /api/pets/:id.
func (h *PetHandler) UpdatePetHandler(c *gin.Context) {
	var req models.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id := c.Param("id")
	existing, err := h.Pets.GetByID(c.Request.Context(), id)
	if err != nil || existing.OwnerID != c.GetString("userID") {
		utils.JSONError(c, http.StatusNotFound, "pet not found", id)
		return
	}

	pet := models.Pet{Name: req.Name, Species: req.Species, Breed: req.Breed, Weight: req.Weight, Notes: req.Notes}
	if err := h.Pets.Update(c.Request.Context(), id, pet); err != nil {
		h.Logger.Error("UpdatePet: failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update pet", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

// DeletePetHandler handles DELETE /api/pets/:id.
func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Pets.DeleteByID(c.Request.Context(), c.GetString("userID"), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "pet not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// UploadPetPhotoHandler handles POST /api/pets/:id/photo.
func (h *PetHandler) UploadPetPhotoHandler(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.Pets.GetByID(c.Request.Context(), id)
	if err != nil || existing.OwnerID != c.GetString("userID") {
		utils.JSONError(c, http.StatusNotFound, "pet not found", id)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "pets")
	if err != nil {
		h.Logger.Error("UploadPetPhoto: upload failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo", err.Error())
		return
	}
	if err := h.Pets.SetPhotoURL(c.Request.Context(), id, url); err != nil {
		h.Logger.Error("UploadPetPhoto: failed to save URL", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save photo URL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
