package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bizdir/internal/services"
	"bizdir/pkg/utils"
)

// UsersController serves the per-user listing views that cut across the
// three collections.
type UsersController struct {
	businessService services.BusinessServiceInterface
	reviewService   services.ReviewServiceInterface
	photoService    services.PhotoServiceInterface
}

func NewUsersController(
	businessService services.BusinessServiceInterface,
	reviewService services.ReviewServiceInterface,
	photoService services.PhotoServiceInterface) *UsersController {
	return &UsersController{
		businessService: businessService,
		reviewService:   reviewService,
		photoService:    photoService,
	}
}

func (u *UsersController) ListOwnerBusinesses(c *gin.Context) {
	ownerID, _ := strconv.Atoi(c.Query("ownerid"))

	businesses, err := u.businessService.ListBusinessesByOwner(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, utils.ErrNoBusinessesForOwner) {
			utils.RespondText(c, http.StatusNotFound,
				fmt.Sprintf("The Owner with given id %d does not own any business", ownerID))
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, businesses)
}

func (u *UsersController) ListUserReviews(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Query("userid"))

	reviews, err := u.reviewService.ListReviewsByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrNoReviewsForUser) {
			utils.RespondText(c, http.StatusNotFound,
				fmt.Sprintf("The User with given id %d does not have any reviews.", userID))
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, reviews)
}

func (u *UsersController) ListUserPhotos(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Query("userid"))

	photos, err := u.photoService.ListPhotosByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrNoPhotosForUser) {
			utils.RespondText(c, http.StatusNotFound,
				fmt.Sprintf("The User with given id %d does not have any photos uploaded.", userID))
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, photos)
}
