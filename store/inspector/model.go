package inspector

import (
	"time"

	"github.com/kbelyakov/psinspect/model"
)

type (
	// GormModelUnscoped модель эквивалент gorm.Model без сохранения удалений
	GormModelUnscoped struct {
		ID        int `gorm:"primaryKey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// Inspector запись об осматривающем
	Inspector struct {
		GormModelUnscoped
		// Внешний идентификатор (UUID), по нему осматривающий привязывается к сессиям
		Uid      string
		Name     string
		Position string
	}
)

// TableName имя таблицы
func (Inspector) TableName() string {
	return "inspectors"
}

// ToInspector маппинг данных в структуру model.Inspector
func (m Inspector) ToInspector() model.Inspector {
	return model.Inspector{
		ID:       m.Uid,
		Name:     m.Name,
		Position: m.Position,
	}
}

// FromInspector заполняет текущую структуру из структуры model.Inspector
func (m *Inspector) FromInspector(inspector model.Inspector) {
	*m = Inspector{
		Uid:      inspector.ID,
		Name:     inspector.Name,
		Position: inspector.Position,
	}
}

type (
	// Setting настройка программы вида ключ-значение (например, текущий выбранный
	// осматривающий)
	Setting struct {
		GormModelUnscoped
		Key   string
		Value string
	}
)

// TableName имя таблицы
func (Setting) TableName() string {
	return "settings"
}
