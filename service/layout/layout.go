// Package layout готовит оборудование ОРУ к отображению: разбивает его на группы
// сетки и спаривает выключатели с их трансформаторами тока.
package layout

import (
	"strings"

	"github.com/kbelyakov/psinspect/model"
)

// Префиксы, отбрасываемые при сопоставлении имён
const (
	breakerPrefix     = "Выключатель "
	transformerPrefix = "ТТ "
)

// Исключения сопоставления: выключатели, чей трансформатор тока называется не по
// общей схеме. Проверяются после точного совпадения и до поиска по вхождению
var pairExceptions = map[string]string{
	"Выключатель 220 кВ Стальная": "ТТ 220 кВ обходного выключателя",
}

// Pair пара выключатель - трансформатор тока для совместного отображения.
// Отсутствующая половина пары равна nil
type Pair struct {
	Breaker     *model.Equipment
	Transformer *model.Equipment
}

// Pairs спаривает выключатели ОРУ с трансформаторами тока по именам: сначала точное
// совпадение имени без префикса, затем таблица исключений, затем поиск по вхождению.
// Эвристика срабатывает по первому совпадению и не гарантирует взаимную однозначность:
// при неоднозначных именах трансформатор достаётся тому выключателю, который
// обрабатывается раньше. Выключатель без пары идёт с пустой половиной, оставшиеся
// трансформаторы выводятся отдельно
func Pairs(oru model.Oru) []Pair {
	breakers := make([]model.Equipment, 0)
	transformers := make([]model.Equipment, 0)
	for _, e := range oru.Equipments {
		switch e.Type {
		case model.CircuitBreaker:
			breakers = append(breakers, e)
		case model.CurrentTransformer:
			transformers = append(transformers, e)
		}
	}

	used := make([]bool, len(transformers))
	pairs := make([]Pair, 0, len(breakers))

	for i := range breakers {
		breaker := breakers[i]
		idx := matchTransformer(breaker, transformers, used)
		if idx < 0 {
			pairs = append(pairs, Pair{Breaker: &breakers[i]})
			continue
		}
		used[idx] = true
		pairs = append(pairs, Pair{Breaker: &breakers[i], Transformer: &transformers[idx]})
	}

	for i := range transformers {
		if !used[i] {
			pairs = append(pairs, Pair{Transformer: &transformers[i]})
		}
	}

	return pairs
}

// Ищет трансформатор тока для выключателя breaker среди ещё не занятых. Возвращает
// индекс в transformers или -1
func matchTransformer(breaker model.Equipment, transformers []model.Equipment, used []bool) int {
	core := strings.TrimPrefix(breaker.Name, breakerPrefix)

	// Точное совпадение имени без префикса
	for i, t := range transformers {
		if used[i] {
			continue
		}
		if strings.TrimPrefix(t.Name, transformerPrefix) == core {
			return i
		}
	}

	// Таблица исключений
	if exception, ok := pairExceptions[breaker.Name]; ok {
		for i, t := range transformers {
			if !used[i] && t.Name == exception {
				return i
			}
		}
	}

	// Поиск по вхождению
	for i, t := range transformers {
		if !used[i] && strings.Contains(t.Name, core) {
			return i
		}
	}

	return -1
}

// Groups разбивает оборудование ОРУ на строки сетки по columns столбцов,
// сохраняя порядок справочника
func Groups(oru model.Oru, columns int) [][]model.Equipment {
	if columns < 1 {
		columns = 1
	}
	groups := make([][]model.Equipment, 0)
	for i := 0; i < len(oru.Equipments); i += columns {
		end := i + columns
		if end > len(oru.Equipments) {
			end = len(oru.Equipments)
		}
		groups = append(groups, oru.Equipments[i:end])
	}
	return groups
}
