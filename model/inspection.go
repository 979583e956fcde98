package model

import (
	"strings"
	"time"
)

// DateTimeLayout формат отметки времени осмотра в файле данных
const DateTimeLayout = "02.01.2006 15:04"

// ParamKey составной ключ введённого значения: оборудование + имя параметра
type ParamKey struct {
	EquipmentID string
	Parameter   string
}

// InspectionResult результат осмотра одной единицы оборудования в рамках сессии.
// Оборудование встраивается целиком (снимок на момент осмотра), а не хранится ссылкой
type InspectionResult struct {
	Equipment Equipment `json:"equipment"`
	// Введённые значения по имени параметра. Отсутствующая запись эквивалентна
	// пустой строке
	Parameters map[string]string `json:"parameters"`
	Comments   string            `json:"comments"`
}

// Value введённое значение параметра с именем name (пустая строка, если не вводилось)
func (m InspectionResult) Value(name string) string {
	if m.Parameters == nil {
		return ""
	}
	return m.Parameters[name]
}

// InspectionSession одна сессия осмотра ОРУ: черновик или завершённый осмотр.
// ОРУ встраивается снимком, чтобы изменение справочника не меняло историю
type InspectionSession struct {
	ID      string             `json:"id" validate:"required"`
	Oru     Oru                `json:"oru"`
	Results []InspectionResult `json:"results"`
	// Время сохранения в формате DateTimeLayout
	DateTime    string `json:"dateTime"`
	IsCompleted bool   `json:"isCompleted"`
	IsDraft     bool   `json:"isDraft"`
	// Идентификатор осматривающего. Для черновика пустой
	InspectorID string `json:"inspectorId"`
}

// DateLabel дата осмотра (часть отметки времени до первого пробела)
func (m InspectionSession) DateLabel() string {
	parts := strings.SplitN(m.DateTime, " ", 2)
	return parts[0]
}

// TimeLabel время осмотра (часть отметки времени после первого пробела)
func (m InspectionSession) TimeLabel() string {
	parts := strings.SplitN(m.DateTime, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// StatusLabel человекочитаемый статус сессии
func (m InspectionSession) StatusLabel() string {
	switch {
	case m.IsDraft:
		return "Черновик"
	case m.IsCompleted:
		return "Завершён"
	}
	return "Не определён"
}

// Time разбирает отметку времени сессии. При некорректной отметке возвращается
// нулевое время, такие сессии считаются самыми старыми
func (m InspectionSession) Time() time.Time {
	t, err := time.ParseInLocation(DateTimeLayout, m.DateTime, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
