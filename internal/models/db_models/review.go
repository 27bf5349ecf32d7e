package db_models

type Review struct {
	ID         int     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int     `json:"userid" gorm:"index"`
	BusinessID int     `json:"businessid" gorm:"index"`
	Dollars    int     `json:"dollars" gorm:"not null"`
	Stars      float64 `json:"stars" gorm:"not null"`
	Review     string  `json:"review,omitempty" gorm:"type:text"`
}
