package catalog

import (
	"github.com/kbelyakov/psinspect/model"
)

// Встроенный справочник подстанции. Используется, когда внешний файл справочника
// не задан в конфигурации
func defaultOrus() []model.Oru {
	return []model.Oru{
		{
			Voltage: "500",
			Name:    "ОРУ-500",
			Equipments: []model.Equipment{
				{
					ID:   "В-500 Рефтинская-1",
					Name: "Выключатель 500 кВ Рефтинская-1",
					Type: model.CircuitBreaker,
					Parameters: []model.InspectionParameter{
						{Name: "Давление элегаза", Unit: "МПа", NormalValue: "0,62-0,75"},
						{Name: "Состояние изоляторов", NormalValue: "норма"},
						{Name: "Указатель положения", NormalValue: "вкл"},
					},
				},
				{
					ID:   "ТТ-500 Рефтинская-1",
					Name: "ТТ 500 кВ Рефтинская-1",
					Type: model.CurrentTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "дел", NormalValue: "2-4"},
						{Name: "Состояние фарфора", NormalValue: "норма"},
					},
				},
				{
					ID:   "ТН-500 1СШ",
					Name: "ТН 500 кВ 1 системы шин",
					Type: model.VoltageTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "дел", NormalValue: "2-4"},
						{Name: "Шум внутри бака", NormalValue: ""},
					},
				},
			},
		},
		{
			Voltage: "220",
			Name:    "ОРУ-220",
			Equipments: []model.Equipment{
				{
					ID:   "В-220 Анна",
					Name: "Выключатель 220 кВ Анна",
					Type: model.CircuitBreaker,
					Parameters: []model.InspectionParameter{
						{Name: "Давление элегаза", Unit: "МПа", NormalValue: "0,6-0,7"},
						{Name: "Счётчик отключений", NormalValue: ""},
					},
				},
				{
					ID:   "ТТ-220 Анна",
					Name: "ТТ 220 кВ Анна",
					Type: model.CurrentTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "дел", NormalValue: "2-4"},
					},
				},
				{
					ID:   "В-220 Стальная",
					Name: "Выключатель 220 кВ Стальная",
					Type: model.CircuitBreaker,
					Parameters: []model.InspectionParameter{
						{Name: "Давление элегаза", Unit: "МПа", NormalValue: "0,6-0,7"},
						{Name: "Счётчик отключений", NormalValue: ""},
					},
				},
				{
					ID:   "ТТ-220 ОВ",
					Name: "ТТ 220 кВ обходного выключателя",
					Type: model.CurrentTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "дел", NormalValue: "2-4"},
					},
				},
			},
		},
		{
			Voltage: model.VoltageCombined,
			Name:    "АТГ и реакторы",
			Equipments: []model.Equipment{
				{
					ID:   "2АТГ",
					Name: "Автотрансформатор 2АТГ",
					Type: model.PowerTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "см", NormalValue: "30-40"},
						{Name: "Температура верхних слоёв масла", Unit: "°C", NormalValue: "10-85"},
						{Name: "Состояние маслосборных устройств", NormalValue: "исправно"},
					},
				},
				{
					ID:   "3АТГ",
					Name: "Автотрансформатор 3АТГ",
					Type: model.PowerTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "см", NormalValue: "30-40"},
						{Name: "Температура верхних слоёв масла", Unit: "°C", NormalValue: "10-85"},
						{Name: "Состояние маслосборных устройств", NormalValue: "исправно"},
					},
				},
				{
					ID:   "ТСН-1",
					Name: "Трансформатор собственных нужд ТСН-1",
					Type: model.AuxiliaryTransformer,
					Parameters: []model.InspectionParameter{
						{Name: "Уровень масла", Unit: "см", NormalValue: "20-30"},
						{Name: "Шум внутри бака", NormalValue: ""},
					},
				},
			},
		},
		{
			Voltage: model.VoltageBuildings,
			Name:    "Здания и сооружения",
			Equipments: []model.Equipment{
				{
					ID:   "ОПУ",
					Name: "Общеподстанционный пункт управления",
					Type: model.Building,
					Parameters: []model.InspectionParameter{
						{Name: "Состояние кровли", NormalValue: "норма"},
						{Name: "Заземление", NormalValue: "норма"},
						{Name: "Огнетушители", NormalValue: "установлены"},
					},
				},
				{
					ID:   "Компрессорная",
					Name: "Компрессорная",
					Type: model.Building,
					Parameters: []model.InspectionParameter{
						{Name: "Давление воздуха", Unit: "МПа", NormalValue: "4-4,5"},
						{Name: "Огнетушители", NormalValue: "установлены"},
					},
				},
			},
		},
	}
}
