package models

import "time"

// Contato is a visitor inquiry about an Imovel.
//
// ImovelID is intentionally not a foreign key: the message must survive the
// listing it references. ImovelTitulo is a snapshot of the listing title at
// submission time for the same reason.
type Contato struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ImovelID     uint      `gorm:"column:imovel_id;not null" json:"imovel_id"`
	ImovelTitulo string    `gorm:"column:imovel_titulo;type:varchar(200)" json:"imovel_titulo"`
	Nome         string    `gorm:"type:varchar(200);not null" json:"nome"`
	Email        string    `gorm:"type:varchar(200);not null" json:"email"`
	Telefone     string    `gorm:"type:varchar(100);not null" json:"telefone"`
	Mensagem     string    `gorm:"type:text;not null" json:"mensagem"`
	DataEnvio    time.Time `gorm:"column:data_envio" json:"data_envio"`
}

func (Contato) TableName() string {
	return "contatos"
}

// TituloDesconhecido is the title snapshot used when the referenced
// listing no longer exists (or never did).
const TituloDesconhecido = "Imóvel desconhecido"
