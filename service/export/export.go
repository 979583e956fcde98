// Package export выгружает историю осмотров в CSV-файлы.
//
// Формат файла - контракт с внешним табличным редактором: UTF-8 с BOM и
// разделитель ";". Менять его нельзя, иначе файл перестанет открываться
// в локали потребителя.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/kbelyakov/psinspect/model"
	"github.com/kbelyakov/psinspect/pkg/tool"
	"github.com/kbelyakov/psinspect/service"
	"github.com/kbelyakov/psinspect/store"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// UTF-8 byte order mark в начале файла, чтобы табличный редактор распознал кодировку
var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Заголовок выгрузки. Одна строка данных на тройку (сессия, оборудование, параметр)
var header = []string{
	"Дата", "Время", "ОРУ", "Напряжение", "Осмотр провёл",
	"Оборудование", "Тип оборудования", "Параметр",
	"Значение", "Норма", "Статус", "Комментарий",
}

// Csv выгрузка осмотров в CSV. Инициируется через NewCsv
type Csv struct {
	ctx        context.Context
	log        *logrus.Entry
	inspectors store.InspectorStore
	dir        string
}

// ConfigCsv конфигурация класса Csv
type ConfigCsv struct {
	Log *logrus.Logger

	// Реестр осматривающих для подстановки имени по идентификатору
	Inspectors store.InspectorStore

	// Директория, куда складываются файлы выгрузки
	Dir string
}

// NewCsv конструктор класса Csv
func NewCsv(ctx context.Context, config *ConfigCsv) (service.ExportSvc, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	if config.Inspectors == nil {
		return nil, errors.New("не передан реестр осматривающих")
	}

	c := Csv{
		ctx: ctx,
		log: config.Log.WithFields(map[string]interface{}{
			"module": "export",
			"scope":  "service",
		}),
		inspectors: config.Inspectors,
		dir:        ".",
	}
	if config.Dir != "" {
		c.dir = config.Dir
	}

	return &c, nil
}

// ExportAll выгружает все сессии в один файл. В имени файла - отметка времени
// в миллисекундах, чтобы выгрузки не затирали друг друга
func (m *Csv) ExportAll(sessions []model.InspectionSession) (string, error) {
	name := fmt.Sprintf("osmotry_%d.csv", tool.EpochMillis(time.Now()))
	return m.write(name, sessions)
}

// ExportSession выгружает одну сессию
func (m *Csv) ExportSession(session model.InspectionSession) (string, error) {
	name := fmt.Sprintf("osmotr_%d.csv", tool.EpochMillis(time.Now()))
	return m.write(name, []model.InspectionSession{session})
}

// Пишет выгрузку в файл name в директории выгрузок. В отличие от хранилища сессий
// ошибки здесь возвращаются вызывающему: интерфейс должен показать, что выгрузка
// не состоялась
func (m *Csv) write(name string, sessions []model.InspectionSession) (string, error) {
	if _, err := os.Stat(m.dir); err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Annotatef(err, "директория выгрузки %s недоступна", m.dir)
		}
		if err := os.MkdirAll(m.dir, os.ModePerm); err != nil {
			return "", errors.Annotatef(err, "ошибка создания директории %s", m.dir)
		}
	}

	path := filepath.Join(m.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Annotatef(err, "ошибка создания файла %s", path)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Write(utf8Bom); err != nil {
		return "", errors.Trace(err)
	}

	w := csv.NewWriter(file)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return "", errors.Trace(err)
	}
	for _, session := range sessions {
		inspectorName := m.inspectorName(session.InspectorID)
		for _, result := range session.Results {
			for _, param := range result.Equipment.Parameters {
				value := result.Value(param.Name)
				row := []string{
					session.DateLabel(),
					session.TimeLabel(),
					session.Oru.Name,
					session.Oru.Voltage,
					inspectorName,
					result.Equipment.Name,
					result.Equipment.Type.Label(),
					param.Name,
					value,
					param.NormalValue,
					Evaluate(value, param.NormalValue).String(),
					result.Comments,
				}
				if err := w.Write(row); err != nil {
					return "", errors.Trace(err)
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Trace(err)
	}

	m.log.Infof("выгрузка сохранена в файл %s", path)
	return path, nil
}

// Имя осматривающего для выгрузки. У черновика идентификатор пустой - имя тоже пустое.
// Если идентификатор остался, а записи в реестре нет, пишем "неизвестно"
func (m *Csv) inspectorName(id string) string {
	if id == "" {
		return ""
	}
	inspector, err := m.inspectors.Get(id)
	if err != nil {
		if !m.inspectors.IsNotFound(err) {
			m.log.Warnf("ошибка реестра осматривающих: %s", err)
		}
		return "неизвестно"
	}
	return inspector.Name
}
