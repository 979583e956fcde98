package model

// Inspector осматривающий (лицо, проводившее завершённый осмотр)
type Inspector struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" conform:"trim" validate:"required"`
	Position string `json:"position" conform:"trim"`
}
