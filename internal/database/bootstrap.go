package database

import (
	"errors"
	"log"

	"litoral-prime/internal/models"

	"gorm.io/gorm"
)

// EnsureAdminUser guarantees a single admin account exists. When the
// account is missing it is created with hashedPassword; when reset is set
// the stored hash is replaced on every boot so a forgotten password can be
// recovered from the environment seed.
func (gdb *GormDB) EnsureAdminUser(username, hashedPassword string, reset bool) error {
	user, err := gdb.GetAdminByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Bootstrap: creating admin user %q", username)
		return gdb.CreateAdmin(&models.AdminUser{
			Username:       username,
			HashedPassword: hashedPassword,
		})
	}
	if err != nil {
		return err
	}
	if reset {
		log.Printf("Bootstrap: resetting password for admin user %q", username)
		return gdb.UpdateAdminPassword(user.ID, hashedPassword)
	}
	return nil
}

// EnsureHero guarantees the hero table has its default row. Reads never
// create the row; only bootstrap and the admin write path persist it.
func (gdb *GormDB) EnsureHero() error {
	var count int64
	if err := gdb.db.Model(&models.Hero{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("Bootstrap: creating default hero row")
	hero := models.DefaultHero()
	return gdb.db.Create(&hero).Error
}
