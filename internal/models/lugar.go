package models

// Lugar is a neighborhood guide entity, optionally linked from Imoveis.
type Lugar struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Nome              string `gorm:"type:varchar(200);not null;uniqueIndex" json:"nome"`
	Descricao         string `gorm:"type:text" json:"descricao"`
	BaresRestaurantes string `gorm:"column:bares_restaurantes;type:text" json:"bares_restaurantes"`
	PontosInteresse   string `gorm:"column:pontos_interesse;type:text" json:"pontos_interesse"`
	ImagemPrincipal   string `gorm:"column:imagem_principal;type:varchar(500)" json:"imagem_principal"`
}

func (Lugar) TableName() string {
	return "lugares"
}
