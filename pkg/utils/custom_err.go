package utils

import "errors"

var (
	ErrBusinessNotFound      = errors.New("business not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrPhotoNotFound         = errors.New("photo not found")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMissingRatingFields   = errors.New("missing rating fields")
	ErrNoBusinessesForOwner  = errors.New("owner has no businesses")
	ErrNoReviewsForUser      = errors.New("user has no reviews")
	ErrNoPhotosForUser       = errors.New("user has no photos")
	ErrDatabaseError         = errors.New("database error")
)
