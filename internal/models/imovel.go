package models

// Imovel is a real-estate listing.
//
// Fotos stores a comma-joined ordered list of public reference paths as a
// single text column. The first entry is the cover photo. This layout is
// kept for compatibility with the existing production schema; it is not a
// normalized child table on purpose.
type Imovel struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Titulo    string `gorm:"type:varchar(200);not null;index" json:"titulo"`
	Descricao string `gorm:"type:text" json:"descricao"`

	// Preco is free-form on purpose: listings carry values like
	// "Consulte" or "R$ 500.000 a R$ 700.000".
	Preco string `gorm:"type:varchar(100)" json:"preco"`

	// LugarID is a nullable reference to Lugar. No cascade: deleting a
	// Lugar detaches its Imoveis instead.
	LugarID *uint `gorm:"column:lugar_id;index" json:"lugar_id"`

	// Bairro is a legacy column, always written as "". The display
	// neighborhood comes from the linked Lugar.
	Bairro string `gorm:"type:varchar(200)" json:"bairro"`

	Quartos   int    `gorm:"type:int" json:"quartos"`
	Banheiros int    `gorm:"type:int" json:"banheiros"`
	Area      int    `gorm:"type:int" json:"area"`
	Fotos     string `gorm:"type:text" json:"fotos"`
	Whatsapp  string `gorm:"type:varchar(50)" json:"whatsapp"`
	Tipo      string `gorm:"type:varchar(100)" json:"tipo"`
}

func (Imovel) TableName() string {
	return "imoveis"
}
