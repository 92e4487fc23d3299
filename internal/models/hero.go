package models

// Hero holds the homepage banner content. At most one row is ever used.
type Hero struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TituloCapa    string `gorm:"column:titulo_capa;type:varchar(200)" json:"titulo_capa"`
	SubtituloCapa string `gorm:"column:subtitulo_capa;type:varchar(300)" json:"subtitulo_capa"`
	ImagemCapa    string `gorm:"column:imagem_capa;type:varchar(500)" json:"imagem_capa"`
}

func (Hero) TableName() string {
	return "hero"
}

// Default hero content, used when the table is empty.
const (
	DefaultHeroTitulo    = "Viva o Melhor do Litoral"
	DefaultHeroSubtitulo = "Encontre seu refúgio na praia."
	DefaultHeroImagem    = "/static/uploads/placeholder.png"
)

// DefaultHero returns an unsaved hero with the default content.
func DefaultHero() Hero {
	return Hero{
		TituloCapa:    DefaultHeroTitulo,
		SubtituloCapa: DefaultHeroSubtitulo,
		ImagemCapa:    DefaultHeroImagem,
	}
}
