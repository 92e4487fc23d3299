package models

// AdminUser is the single administrative account. It is created by the
// bootstrap path on startup and never through a public route.
type AdminUser struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	HashedPassword string `gorm:"column:hashed_password;type:varchar(255);not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
