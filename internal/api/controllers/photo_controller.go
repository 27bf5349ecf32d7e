package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdir/internal/models/request_models"
	"bizdir/internal/services"
	"bizdir/pkg/utils"
)

type PhotoController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoController(photoService services.PhotoServiceInterface) *PhotoController {
	return &PhotoController{
		photoService: photoService,
	}
}

func (p *PhotoController) UploadPhoto(c *gin.Context) {
	var req request_models.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	photo, err := p.photoService.CreatePhoto(c.Request.Context(), req)
	if err != nil {
		// Upload is the one endpoint whose not-found body is JSON.
		if errors.Is(err, utils.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business not found"})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, photo)
}

func (p *PhotoController) ModifyPhoto(c *gin.Context) {
	var req request_models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	photo, err := p.photoService.UpdatePhoto(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, photo)
}

func (p *PhotoController) DeletePhoto(c *gin.Context) {
	var req request_models.DeletePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := p.photoService.DeletePhoto(c.Request.Context(), req.UserID, req.BusinessID); err != nil {
		if errors.Is(err, utils.ErrPhotoNotFound) {
			utils.RespondText(c, http.StatusNotFound, "No Photo Found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondText(c, http.StatusOK,
		fmt.Sprintf("Photo for business %d by user %d has been deleted.", req.BusinessID, req.UserID))
}
