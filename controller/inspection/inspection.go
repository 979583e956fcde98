// Package inspection реализует правила работы с черновиками и завершёнными осмотрами.
package inspection

import (
	"context"
	"io/ioutil"
	"time"

	"github.com/kbelyakov/psinspect/controller"
	"github.com/kbelyakov/psinspect/model"
	"github.com/kbelyakov/psinspect/store"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoInspectorSelected попытка завершить осмотр без выбранного осматривающего
var ErrNoInspectorSelected = errors.New("не выбран осматривающий")

// Inspection контроллер жизненного цикла осмотра. Инициируется через NewInspection
type Inspection struct {
	ctx context.Context
	log *logrus.Entry

	sessions   store.SessionStore
	inspectors store.InspectorStore

	// Источник текущего времени (подменяется в тестах)
	now func() time.Time
}

// ConfigInspection конфигурация класса Inspection
type ConfigInspection struct {
	Log *logrus.Logger

	Sessions   store.SessionStore
	Inspectors store.InspectorStore
}

// NewInspection конструктор класса Inspection
func NewInspection(ctx context.Context, config *ConfigInspection) (controller.InspectionCtl, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	if config.Sessions == nil {
		return nil, errors.New("не передано хранилище сессий")
	}
	if config.Inspectors == nil {
		return nil, errors.New("не передан реестр осматривающих")
	}

	i := Inspection{
		ctx: ctx,
		log: config.Log.WithFields(map[string]interface{}{
			"module": "inspection",
			"scope":  "controller",
		}),
		sessions:   config.Sessions,
		inspectors: config.Inspectors,
		now:        time.Now,
	}

	return &i, nil
}

// BuildResults собирает по одному результату на каждую единицу оборудования ОРУ
// в порядке справочника
func (m *Inspection) BuildResults(oru model.Oru, values map[model.ParamKey]string, comments map[string]string) []model.InspectionResult {
	results := make([]model.InspectionResult, 0, len(oru.Equipments))
	for _, equipment := range oru.Equipments {
		parameters := make(map[string]string, len(equipment.Parameters))
		for _, param := range equipment.Parameters {
			// Отсутствие значения эквивалентно пустой строке
			parameters[param.Name] = values[model.ParamKey{
				EquipmentID: equipment.ID,
				Parameter:   param.Name,
			}]
		}
		results = append(results, model.InspectionResult{
			Equipment:  equipment,
			Parameters: parameters,
			Comments:   comments[equipment.ID],
		})
	}
	return results
}

// AutosaveDraft сохраняет черновик осмотра. Каждый вызов создаёт новую сессию
func (m *Inspection) AutosaveDraft(oru model.Oru, values map[model.ParamKey]string, comments map[string]string) model.InspectionSession {
	session := model.InspectionSession{
		ID:          uuid.New().String(),
		Oru:         oru,
		Results:     m.BuildResults(oru, values, comments),
		DateTime:    m.now().Format(model.DateTimeLayout),
		IsCompleted: false,
		IsDraft:     true,
		InspectorID: "",
	}
	m.sessions.Save(session)
	m.log.Debugf("сохранён черновик %s для ОРУ %s", session.ID, oru.Name)
	return session
}

// Finalize завершает осмотр от имени осматривающего inspectorID. Завершённый осмотр
// замещает все накопившиеся черновики этого ОРУ, сколько бы их ни было
func (m *Inspection) Finalize(oru model.Oru, values map[model.ParamKey]string, comments map[string]string, inspectorID string) (*model.InspectionSession, error) {
	if inspectorID == "" {
		return nil, ErrNoInspectorSelected
	}

	for _, s := range m.sessions.GetAll() {
		if s.IsDraft && s.Oru.Voltage == oru.Voltage {
			m.sessions.Delete(s.ID)
		}
	}

	session := model.InspectionSession{
		ID:          uuid.New().String(),
		Oru:         oru,
		Results:     m.BuildResults(oru, values, comments),
		DateTime:    m.now().Format(model.DateTimeLayout),
		IsCompleted: true,
		IsDraft:     false,
		InspectorID: inspectorID,
	}
	m.sessions.Save(session)
	m.log.Infof("завершён осмотр %s ОРУ %s", session.ID, oru.Name)
	return &session, nil
}

// FinalizeCurrent завершает осмотр от имени текущего выбранного осматривающего
func (m *Inspection) FinalizeCurrent(oru model.Oru, values map[model.ParamKey]string, comments map[string]string) (*model.InspectionSession, error) {
	current, err := m.inspectors.Current()
	if err != nil {
		if m.inspectors.IsNotFound(err) {
			return nil, ErrNoInspectorSelected
		}
		return nil, errors.Trace(err)
	}
	return m.Finalize(oru, values, comments, current.ID)
}

// LatestDraft возвращает введённые значения самого свежего черновика для этого ОРУ.
// Остальные черновики (возможные из-за автосохранения без дедупликации) не трогаются:
// они уйдут при завершении осмотра или при ручном удалении
func (m *Inspection) LatestDraft(oru model.Oru) (map[model.ParamKey]string, map[string]string, bool) {
	var latest *model.InspectionSession
	for _, s := range m.sessions.GetAll() {
		if !s.IsDraft || s.Oru.Voltage != oru.Voltage {
			continue
		}
		if latest == nil || s.Time().After(latest.Time()) {
			copied := s
			latest = &copied
		}
	}
	if latest == nil {
		return nil, nil, false
	}

	values := make(map[model.ParamKey]string)
	comments := make(map[string]string)
	for _, result := range latest.Results {
		for name, value := range result.Parameters {
			values[model.ParamKey{EquipmentID: result.Equipment.ID, Parameter: name}] = value
		}
		if result.Comments != "" {
			comments[result.Equipment.ID] = result.Comments
		}
	}
	m.log.Debugf("восстановлен черновик %s для ОРУ %s", latest.ID, oru.Name)
	return values, comments, true
}
