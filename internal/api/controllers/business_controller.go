package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bizdir/internal/models/request_models"
	"bizdir/internal/services"
	"bizdir/pkg/utils"
)

type BusinessController struct {
	businessService services.BusinessServiceInterface
}

func NewBusinessController(businessService services.BusinessServiceInterface) *BusinessController {
	return &BusinessController{
		businessService: businessService,
	}
}

func (b *BusinessController) CreateBusiness(c *gin.Context) {
	var req request_models.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Missing Required fields")
		return
	}

	business, err := b.businessService.CreateBusiness(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, business)
}

func (b *BusinessController) ModifyBusiness(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Business Not Found")
		return
	}

	var req request_models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	business, err := b.businessService.UpdateBusiness(c.Request.Context(), id, req)
	if err != nil {
		// This endpoint reports a missing business as 400, not 404.
		if errors.Is(err, utils.ErrBusinessNotFound) {
			utils.RespondText(c, http.StatusBadRequest, "Business Not Found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, business)
}

func (b *BusinessController) DeleteBusiness(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondText(c, http.StatusNotFound, "No Business Found")
		return
	}

	if err := b.businessService.DeleteBusiness(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrBusinessNotFound) {
			utils.RespondText(c, http.StatusNotFound, "No Business Found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondText(c, http.StatusOK, fmt.Sprintf("Business With id %d has been deleted.", id))
}

func (b *BusinessController) ListBusinesses(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	envelope, err := b.businessService.ListBusinesses(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, envelope)
}

func (b *BusinessController) GetBusinessDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondText(c, http.StatusNotFound, "Business Not Found")
		return
	}

	detail, err := b.businessService.GetBusinessDetail(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, detail)
}
