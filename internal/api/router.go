package api

import (
	"github.com/gin-gonic/gin"

	"bizdir/internal/api/controllers"
)

// RegisterRoutes binds the route table. The guard middleware wraps every
// mutating route; pass nil for open access.
func RegisterRoutes(r *gin.Engine,
	guard gin.HandlerFunc,
	businessController *controllers.BusinessController,
	reviewController *controllers.ReviewController,
	photoController *controllers.PhotoController,
	usersController *controllers.UsersController) {

	if guard == nil {
		guard = func(c *gin.Context) { c.Next() }
	}

	r.POST("/business/create", guard, businessController.CreateBusiness)
	r.PATCH("/business/modify/:id", guard, businessController.ModifyBusiness)
	r.DELETE("/business/delete/:id", guard, businessController.DeleteBusiness)
	r.GET("/businesses", businessController.ListBusinesses)
	r.GET("/business/detail/:id", businessController.GetBusinessDetail)

	r.POST("/reviews/create", guard, reviewController.CreateReview)
	r.PATCH("/review/modify", guard, reviewController.ModifyReview)
	r.DELETE("/review/delete", guard, reviewController.DeleteReview)

	r.POST("/photos/upload", guard, photoController.UploadPhoto)
	r.PATCH("/photos/modify", guard, photoController.ModifyPhoto)
	r.DELETE("/photos/delete", guard, photoController.DeletePhoto)

	usersGroup := r.Group("/users")
	usersGroup.GET("/business", usersController.ListOwnerBusinesses)
	usersGroup.GET("/reviews", usersController.ListUserReviews)
	usersGroup.GET("/photos", usersController.ListUserPhotos)
}
