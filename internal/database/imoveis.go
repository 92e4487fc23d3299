package database

import (
	"litoral-prime/internal/models"
)

// CreateImovel inserts a new listing.
func (gdb *GormDB) CreateImovel(imovel *models.Imovel) error {
	return gdb.db.Create(imovel).Error
}

// GetImovelByID retrieves a listing by ID.
func (gdb *GormDB) GetImovelByID(id uint) (*models.Imovel, error) {
	var imovel models.Imovel
	err := gdb.db.Where("id = ?", id).First(&imovel).Error
	if err != nil {
		return nil, err
	}
	return &imovel, nil
}

// GetAllImoveis retrieves all listings, oldest first.
func (gdb *GormDB) GetAllImoveis() ([]models.Imovel, error) {
	var imoveis []models.Imovel
	err := gdb.db.Order("id ASC").Find(&imoveis).Error
	return imoveis, err
}

// UpdateImovelScalars overwrites every scalar field of an existing listing.
// The fotos column is deliberately left untouched: photo management goes
// through UpdateImovelFotos only. Returns gorm.ErrRecordNotFound when the
// id does not exist.
func (gdb *GormDB) UpdateImovelScalars(imovel *models.Imovel) error {
	var existing models.Imovel
	if err := gdb.db.Where("id = ?", imovel.ID).First(&existing).Error; err != nil {
		return err
	}
	return gdb.db.Model(&models.Imovel{}).
		Where("id = ?", imovel.ID).
		Updates(map[string]interface{}{
			"titulo":    imovel.Titulo,
			"descricao": imovel.Descricao,
			"preco":     imovel.Preco,
			"lugar_id":  imovel.LugarID,
			"bairro":    "",
			"quartos":   imovel.Quartos,
			"banheiros": imovel.Banheiros,
			"area":      imovel.Area,
			"whatsapp":  imovel.Whatsapp,
			"tipo":      imovel.Tipo,
		}).Error
}

// UpdateImovelFotos rewrites the stored photo CSV for a listing.
func (gdb *GormDB) UpdateImovelFotos(id uint, fotos string) error {
	return gdb.db.Model(&models.Imovel{}).
		Where("id = ?", id).
		Update("fotos", fotos).Error
}

// DeleteImovel removes a listing row. Stored photo files are not cleaned
// up. Returns the number of deleted rows.
func (gdb *GormDB) DeleteImovel(id uint) (int64, error) {
	result := gdb.db.Where("id = ?", id).Delete(&models.Imovel{})
	return result.RowsAffected, result.Error
}
