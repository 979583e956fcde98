package model

// EquipmentType тип оборудования подстанции
type EquipmentType string

const (
	// PowerTransformer силовой (авто)трансформатор
	PowerTransformer EquipmentType = "POWER_TRANSFORMER"
	// CircuitBreaker выключатель
	CircuitBreaker EquipmentType = "CIRCUIT_BREAKER"
	// CurrentTransformer трансформатор тока
	CurrentTransformer EquipmentType = "CURRENT_TRANSFORMER"
	// VoltageTransformer трансформатор напряжения
	VoltageTransformer EquipmentType = "VOLTAGE_TRANSFORMER"
	// AuxiliaryTransformer трансформатор собственных нужд
	AuxiliaryTransformer EquipmentType = "AUXILIARY_TRANSFORMER"
	// Building здания и сооружения
	Building EquipmentType = "BUILDING"
)

// EquipmentTypes все известные типы оборудования
var EquipmentTypes = []EquipmentType{
	PowerTransformer,
	CircuitBreaker,
	CurrentTransformer,
	VoltageTransformer,
	AuxiliaryTransformer,
	Building,
}

// Label название типа оборудования для отображения
func (m EquipmentType) Label() string {
	switch m {
	case PowerTransformer:
		return "Силовой трансформатор"
	case CircuitBreaker:
		return "Выключатель"
	case CurrentTransformer:
		return "Трансформатор тока"
	case VoltageTransformer:
		return "Трансформатор напряжения"
	case AuxiliaryTransformer:
		return "ТСН"
	case Building:
		return "Здания и сооружения"
	}
	return string(m)
}

// InspectionParameter один контролируемый параметр оборудования. Задаётся только
// справочником и после создания не меняется
type InspectionParameter struct {
	Name string `json:"name" conform:"trim" validate:"required"`
	// Единица измерения (может отсутствовать)
	Unit string `json:"unit,omitempty" conform:"trim"`
	// Нормальное значение: пустая строка (не контролируется), диапазон "мин-макс",
	// либо точное значение для сравнения
	NormalValue string `json:"normalValue" conform:"trim"`
}

// Equipment единица оборудования ОРУ со списком контролируемых параметров.
// Задаётся только справочником и после создания не меняется
type Equipment struct {
	// Идентификатор, уникальный в пределах одного ОРУ (диспетчерское имя, например "2АТГ")
	ID         string                `json:"id" conform:"trim" validate:"required"`
	Name       string                `json:"name" conform:"trim" validate:"required"`
	Type       EquipmentType         `json:"type" validate:"required,equipmenttype"`
	Parameters []InspectionParameter `json:"parameters"`
}

// Oru открытое распределительное устройство (группа оборудования одного класса
// напряжения). Voltage служит дискриминатором класса ОРУ: "0" - здания и сооружения,
// "500/200/35" - объединённое ОРУ автотрансформаторов и реакторов
type Oru struct {
	Voltage    string      `json:"voltage" conform:"trim" validate:"required"`
	Name       string      `json:"name" conform:"trim" validate:"required"`
	Equipments []Equipment `json:"equipments"`
}

// VoltageBuildings класс "ОРУ" для зданий и сооружений
const VoltageBuildings = "0"

// VoltageCombined объединённое ОРУ автотрансформаторов и реакторов
const VoltageCombined = "500/200/35"
