package request_models

type CreateReviewRequest struct {
	BusinessID int      `json:"businessid"`
	UserID     int      `json:"userid"`
	Dollars    *int     `json:"dollars"`
	Stars      *float64 `json:"stars"`
	Review     string   `json:"review"`
}

type UpdateReviewRequest struct {
	UserID     int      `json:"userid"`
	BusinessID int      `json:"businessid"`
	Dollars    *int     `json:"dollars"`
	Stars      *float64 `json:"stars"`
	Review     *string  `json:"review"`
}

type DeleteReviewRequest struct {
	UserID     int `json:"userid"`
	BusinessID int `json:"businessid"`
}
