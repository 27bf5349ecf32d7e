package db_models

type Business struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"not null"`
	Address     string `json:"address" gorm:"not null"`
	City        string `json:"city" gorm:"not null"`
	State       string `json:"state" gorm:"not null"`
	Zip         string `json:"zip" gorm:"not null"`
	Phone       string `json:"phone" gorm:"not null"`
	Category    string `json:"category" gorm:"not null"`
	Subcategory string `json:"subcategory" gorm:"not null"`
	Website     string `json:"website,omitempty"`
	Email       string `json:"email,omitempty"`
	OwnerID     int    `json:"ownerid,omitempty" gorm:"index"`
}
