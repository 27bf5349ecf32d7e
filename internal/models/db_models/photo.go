package db_models

// Photo carries image metadata only; the image bytes live elsewhere.
// The surrogate key is internal and never serialized, matching the public
// contract where photos are addressed by the (userid, businessid) pair.
type Photo struct {
	ID         int    `json:"-" gorm:"primaryKey;autoIncrement"`
	UserID     int    `json:"userid" gorm:"index"`
	BusinessID int    `json:"businessid" gorm:"index"`
	Caption    string `json:"caption,omitempty"`
}
