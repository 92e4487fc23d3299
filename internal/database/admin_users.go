package database

import (
	"litoral-prime/internal/models"
)

// GetAdminByUsername retrieves an admin account by exact username.
func (gdb *GormDB) GetAdminByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := gdb.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAdmin inserts a new admin account.
func (gdb *GormDB) CreateAdmin(user *models.AdminUser) error {
	return gdb.db.Create(user).Error
}

// UpdateAdminPassword replaces the stored hash for an admin account.
func (gdb *GormDB) UpdateAdminPassword(id uint, hashed string) error {
	return gdb.db.Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("hashed_password", hashed).Error
}
