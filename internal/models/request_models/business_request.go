package request_models

type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	Zip         string `json:"zip" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory" binding:"required"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	OwnerID     int    `json:"ownerid"`
}

// Update fields are pointers so an omitted field and a field explicitly set
// to its zero value are distinguishable: nil keeps the stored value, a
// non-nil pointer is always applied.
type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Website     *string `json:"website"`
	Email       *string `json:"email"`
}
