package controller

import (
	"github.com/kbelyakov/psinspect/model"
)

// InspectionCtl контроллер жизненного цикла осмотра: собирает введённые значения
// в результаты и сессии и следит за правилами черновиков и завершённых осмотров
//go:generate mockery --dir . --name InspectionCtl --output ./mocks
type InspectionCtl interface {
	// Собирает по одному результату на каждую единицу оборудования ОРУ в порядке
	// справочника. Отсутствующее значение параметра считается пустой строкой,
	// оборудование не пропускается, даже если все значения пустые
	BuildResults(oru model.Oru, values map[model.ParamKey]string, comments map[string]string) []model.InspectionResult

	// Сохраняет черновик осмотра (автосохранение). Каждый вызов создаёт новую
	// сессию: накопившиеся черновики вычищаются только при завершении осмотра
	AutosaveDraft(oru model.Oru, values map[model.ParamKey]string, comments map[string]string) model.InspectionSession

	// Завершает осмотр от имени осматривающего inspectorID. При пустом inspectorID
	// возвращается ErrNoInspectorSelected и ничего не сохраняется. При успехе перед
	// сохранением удаляются все черновики этого ОРУ
	Finalize(oru model.Oru, values map[model.ParamKey]string, comments map[string]string, inspectorID string) (*model.InspectionSession, error)

	// Завершает осмотр от имени текущего выбранного осматривающего из реестра
	FinalizeCurrent(oru model.Oru, values map[model.ParamKey]string, comments map[string]string) (*model.InspectionSession, error)

	// Возвращает введённые значения самого свежего черновика для этого ОРУ, чтобы
	// заполнить ими экран ввода. Если черновиков нет, последним значением вернётся false
	LatestDraft(oru model.Oru) (map[model.ParamKey]string, map[string]string, bool)
}
