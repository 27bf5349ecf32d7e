package response_models

import "bizdir/internal/models/db_models"

type PageLinks struct {
	NextPage  string `json:"nextPage,omitempty"`
	LastPage  string `json:"lastPage,omitempty"`
	PrevPage  string `json:"prevPage,omitempty"`
	FirstPage string `json:"firstPage,omitempty"`
}

// BusinessPage is the pagination envelope for GET /businesses. The record
// slice is keyed "business" (singular) to preserve the public contract.
type BusinessPage struct {
	Business []db_models.Business `json:"business"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
	LastPage int                  `json:"lastPage"`
	Total    int                  `json:"total"`
	Links    PageLinks            `json:"links"`
}

type BusinessDetail struct {
	Business db_models.Business `json:"business"`
	Reviews  []db_models.Review `json:"reviews"`
	Photos   []db_models.Photo  `json:"photos"`
}
