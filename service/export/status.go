package export

import (
	"strconv"
	"strings"
)

// Status трёхзначный статус соответствия введённого значения норме
type Status int

const (
	// NotChecked параметр не контролируется или значение не вводилось
	NotChecked Status = iota
	// Normal значение в норме
	Normal
	// OutOfRange значение вне нормы
	OutOfRange
)

// String подпись статуса для выгрузки
func (m Status) String() string {
	switch m {
	case Normal:
		return "Норма"
	case OutOfRange:
		return "Не норма"
	}
	return "Не проверено"
}

// Значения, считающиеся нормой при словесной записи. Список фиксированный:
// это словарь справочника, а не пользовательская настройка
var normalTokens = []string{"норма", "исправно", "установлены"}

// Evaluate вычисляет статус введённого значения entered относительно нормы normalSpec.
// Норма задаётся пустой строкой (не контролируется), диапазоном "мин-макс" (десятичный
// разделитель - запятая или точка, границы включительно) или точным значением
func Evaluate(entered, normalSpec string) Status {
	if normalSpec == "" || entered == "" {
		return NotChecked
	}

	for _, token := range normalTokens {
		if entered == token {
			return Normal
		}
	}

	if strings.Contains(normalSpec, "-") {
		parts := strings.Split(normalSpec, "-")
		if len(parts) != 2 {
			return NotChecked
		}
		min, err1 := parseNumber(parts[0])
		max, err2 := parseNumber(parts[1])
		value, err3 := parseNumber(entered)
		if err1 != nil || err2 != nil || err3 != nil {
			return NotChecked
		}
		if min <= value && value <= max {
			return Normal
		}
		return OutOfRange
	}

	if entered == normalSpec {
		return Normal
	}
	return OutOfRange
}

// Разбирает число с запятой или точкой в качестве десятичного разделителя
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
