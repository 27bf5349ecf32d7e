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

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

func (r *ReviewController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, review)
}

func (r *ReviewController) ModifyReview(c *gin.Context) {
	var req request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.UpdateReview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, review)
}

func (r *ReviewController) DeleteReview(c *gin.Context) {
	var req request_models.DeleteReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondText(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.reviewService.DeleteReview(c.Request.Context(), req.UserID, req.BusinessID); err != nil {
		if errors.Is(err, utils.ErrReviewNotFound) {
			utils.RespondText(c, http.StatusNotFound, "No Review Found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondText(c, http.StatusOK,
		fmt.Sprintf("Review for business %d by user %d has been deleted.", req.BusinessID, req.UserID))
}
