package request_models

type CreatePhotoRequest struct {
	BusinessID int    `json:"businessid"`
	UserID     int    `json:"userid"`
	Caption    string `json:"caption"`
}

type UpdatePhotoRequest struct {
	UserID     int     `json:"userid"`
	BusinessID int     `json:"businessid"`
	Caption    *string `json:"caption"`
}

type DeletePhotoRequest struct {
	UserID     int `json:"userid"`
	BusinessID int `json:"businessid"`
}
