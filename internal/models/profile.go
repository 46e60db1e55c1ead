package models

import "time"

// Profile is the core one-to-one profile record for a user, upserted by
// user_id. JSON keys are camelCase; this is the shape the page loads.
type Profile struct {
	UserID      string `gorm:"column:user_id;type:text;primaryKey" json:"userId"`
	FirstName   string `gorm:"column:first_name;type:text" json:"firstName"`
	LastName    string `gorm:"column:last_name;type:text" json:"lastName"`
	Phone       string `gorm:"column:phone;type:text" json:"phone"`
	DOB         string `gorm:"column:dob;type:text" json:"dob"`
	Designation string `gorm:"column:designation;type:text" json:"designation"`
	Gender      string `gorm:"column:gender;type:text" json:"gender"`
	Country     string `gorm:"column:country;type:text" json:"country"`
	State       string `gorm:"column:state;type:text" json:"state"`
	City        string `gorm:"column:city;type:text" json:"city"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }
