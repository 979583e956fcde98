package layout

import (
	"testing"

	"github.com/kbelyakov/psinspect/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breaker(id, name string) model.Equipment {
	return model.Equipment{ID: id, Name: name, Type: model.CircuitBreaker}
}

func transformer(id, name string) model.Equipment {
	return model.Equipment{ID: id, Name: name, Type: model.CurrentTransformer}
}

// Точное совпадение имён без префиксов
func TestPairsExactMatch(t *testing.T) {
	oru := model.Oru{
		Voltage: "220",
		Equipments: []model.Equipment{
			breaker("В-1", "Выключатель 220 кВ Анна"),
			transformer("ТТ-1", "ТТ 220 кВ Анна"),
			breaker("В-2", "Выключатель 220 кВ Новая"),
			transformer("ТТ-2", "ТТ 220 кВ Новая"),
		},
	}

	pairs := Pairs(oru)
	require.Len(t, pairs, 2)
	assert.Equal(t, "В-1", pairs[0].Breaker.ID)
	assert.Equal(t, "ТТ-1", pairs[0].Transformer.ID)
	assert.Equal(t, "В-2", pairs[1].Breaker.ID)
	assert.Equal(t, "ТТ-2", pairs[1].Transformer.ID)
}

// Таблица исключений срабатывает, когда точного совпадения нет
func TestPairsException(t *testing.T) {
	oru := model.Oru{
		Voltage: "220",
		Equipments: []model.Equipment{
			breaker("В-1", "Выключатель 220 кВ Стальная"),
			transformer("ТТ-1", "ТТ 220 кВ обходного выключателя"),
		},
	}

	pairs := Pairs(oru)
	require.Len(t, pairs, 1)
	require.NotNil(t, pairs[0].Transformer)
	assert.Equal(t, "ТТ-1", pairs[0].Transformer.ID)
}

// Поиск по вхождению - последний рубеж
func TestPairsContains(t *testing.T) {
	oru := model.Oru{
		Voltage: "220",
		Equipments: []model.Equipment{
			breaker("В-1", "Выключатель 220 кВ Анна"),
			transformer("ТТ-1", "Трансформатор тока линии 220 кВ Анна (резерв)"),
		},
	}

	pairs := Pairs(oru)
	require.Len(t, pairs, 1)
	require.NotNil(t, pairs[0].Transformer)
	assert.Equal(t, "ТТ-1", pairs[0].Transformer.ID)
}

// Выключатель без пары идёт с пустой половиной, лишний трансформатор - отдельно
func TestPairsUnmatched(t *testing.T) {
	oru := model.Oru{
		Voltage: "220",
		Equipments: []model.Equipment{
			breaker("В-1", "Выключатель 220 кВ Анна"),
			transformer("ТТ-9", "ТТ 220 кВ Луговая"),
		},
	}

	pairs := Pairs(oru)
	require.Len(t, pairs, 2)
	assert.Equal(t, "В-1", pairs[0].Breaker.ID)
	assert.Nil(t, pairs[0].Transformer)
	assert.Nil(t, pairs[1].Breaker)
	assert.Equal(t, "ТТ-9", pairs[1].Transformer.ID)
}

// Эвристика отдаёт неоднозначный трансформатор первому выключателю по порядку
func TestPairsFirstMatchWins(t *testing.T) {
	oru := model.Oru{
		Voltage: "220",
		Equipments: []model.Equipment{
			breaker("В-1", "Выключатель 220 кВ Анна"),
			breaker("В-2", "Выключатель 220 кВ Анна-2"),
			transformer("ТТ-1", "ТТ линий 220 кВ Анна и 220 кВ Анна-2"),
		},
	}

	pairs := Pairs(oru)
	require.Len(t, pairs, 2)
	require.NotNil(t, pairs[0].Transformer)
	assert.Equal(t, "ТТ-1", pairs[0].Transformer.ID)
	assert.Equal(t, "В-1", pairs[0].Breaker.ID)
	assert.Nil(t, pairs[1].Transformer)
}

// Остальные типы оборудования в спаривании не участвуют
func TestPairsIgnoresOtherTypes(t *testing.T) {
	oru := model.Oru{
		Voltage: "500",
		Equipments: []model.Equipment{
			{ID: "2АТГ", Name: "Автотрансформатор 2АТГ", Type: model.PowerTransformer},
			breaker("В-1", "Выключатель 500 кВ Рефтинская-1"),
			transformer("ТТ-1", "ТТ 500 кВ Рефтинская-1"),
		},
	}

	pairs := Pairs(oru)
	require.Len(t, pairs, 1)
	assert.Equal(t, "В-1", pairs[0].Breaker.ID)
	assert.Equal(t, "ТТ-1", pairs[0].Transformer.ID)
}

func TestGroups(t *testing.T) {
	oru := model.Oru{
		Voltage: "220",
		Equipments: []model.Equipment{
			breaker("В-1", "Выключатель 1"),
			breaker("В-2", "Выключатель 2"),
			breaker("В-3", "Выключатель 3"),
			breaker("В-4", "Выключатель 4"),
		},
	}

	groups := Groups(oru, 3)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 3)
	assert.Len(t, groups[1], 1)

	// Некорректное число столбцов сводится к одному
	groups = Groups(oru, 0)
	assert.Len(t, groups, 4)
}
