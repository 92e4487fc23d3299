package database

import (
	"litoral-prime/internal/models"

	"gorm.io/gorm"
)

// CreateLugar inserts a new neighborhood guide.
func (gdb *GormDB) CreateLugar(lugar *models.Lugar) error {
	return gdb.db.Create(lugar).Error
}

// GetLugarByID retrieves a lugar by ID.
func (gdb *GormDB) GetLugarByID(id uint) (*models.Lugar, error) {
	var lugar models.Lugar
	err := gdb.db.Where("id = ?", id).First(&lugar).Error
	if err != nil {
		return nil, err
	}
	return &lugar, nil
}

// GetAllLugares retrieves all lugares ordered by name.
func (gdb *GormDB) GetAllLugares() ([]models.Lugar, error) {
	var lugares []models.Lugar
	err := gdb.db.Order("nome ASC").Find(&lugares).Error
	return lugares, err
}

// GetLugarNames returns an id -> name map for display resolution. Every
// cross-entity fetch is an explicit query; Imovel projections use this map
// instead of association loading.
func (gdb *GormDB) GetLugarNames() (map[uint]string, error) {
	lugares, err := gdb.GetAllLugares()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(lugares))
	for _, l := range lugares {
		names[l.ID] = l.Nome
	}
	return names, nil
}

// UpdateLugar overwrites the scalar fields of an existing lugar.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (gdb *GormDB) UpdateLugar(lugar *models.Lugar) error {
	var existing models.Lugar
	if err := gdb.db.Where("id = ?", lugar.ID).First(&existing).Error; err != nil {
		return err
	}
	return gdb.db.Save(lugar).Error
}

// DeleteLugar removes a lugar. Referencing imoveis are detached (lugar_id
// set NULL) in the same transaction so the delete never violates the
// relationship; orphaned listings fall back to the undefined-location label
// at display time. Returns the number of deleted rows.
func (gdb *GormDB) DeleteLugar(id uint) (int64, error) {
	var deleted int64
	err := gdb.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Imovel{}).
			Where("lugar_id = ?", id).
			Update("lugar_id", nil).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Lugar{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
