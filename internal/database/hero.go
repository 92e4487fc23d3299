package database

import (
	"errors"

	"litoral-prime/internal/models"

	"gorm.io/gorm"
)

// GetHero returns the singleton hero row, or an unsaved default-valued hero
// when the table is empty. The pure read path never persists anything.
func (gdb *GormDB) GetHero() (*models.Hero, error) {
	var hero models.Hero
	err := gdb.db.First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultHero()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// UpsertHero updates the hero title and subtitle, creating the singleton
// row first when none exists. imagem replaces the cover reference only when
// non-empty; concurrent writers are last-writer-wins.
func (gdb *GormDB) UpsertHero(titulo, subtitulo, imagem string) (*models.Hero, error) {
	var hero models.Hero
	err := gdb.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&hero).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hero = models.DefaultHero()
			if err := tx.Create(&hero).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		hero.TituloCapa = titulo
		hero.SubtituloCapa = subtitulo
		if imagem != "" {
			hero.ImagemCapa = imagem
		}
		return tx.Save(&hero).Error
	})
	if err != nil {
		return nil, err
	}
	return &hero, nil
}
