package models

// Admin is the profile entity behind an admin login. The community an admin
// manages lives on the UserRole record, not here. Email uniqueness is
// enforced across BOTH the admins and residents tables at the service layer.
type Admin struct {
	BaseModel
	FirstName string `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(50);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(100);unique;not null" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
}
