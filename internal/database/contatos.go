package database

import (
	"time"

	"litoral-prime/internal/models"
)

// CreateContato persists a new inquiry, stamping the submission time when
// the caller left it unset.
func (gdb *GormDB) CreateContato(contato *models.Contato) error {
	if contato.DataEnvio.IsZero() {
		contato.DataEnvio = time.Now()
	}
	return gdb.db.Create(contato).Error
}

// GetContatoByID retrieves an inquiry by ID.
func (gdb *GormDB) GetContatoByID(id uint) (*models.Contato, error) {
	var contato models.Contato
	err := gdb.db.Where("id = ?", id).First(&contato).Error
	if err != nil {
		return nil, err
	}
	return &contato, nil
}

// GetAllContatos retrieves all inquiries, newest first.
func (gdb *GormDB) GetAllContatos() ([]models.Contato, error) {
	var contatos []models.Contato
	err := gdb.db.Order("id DESC").Find(&contatos).Error
	return contatos, err
}

// DeleteContato removes an inquiry. Returns the number of deleted rows so
// callers can tell not-found apart from success without a hard error.
func (gdb *GormDB) DeleteContato(id uint) (int64, error) {
	result := gdb.db.Where("id = ?", id).Delete(&models.Contato{})
	return result.RowsAffected, result.Error
}
