// Package catalog отдаёт справочник ОРУ и оборудования подстанции.
//
// Справочник формируется один раз при старте программы и дальше не меняется.
// По умолчанию используется встроенный набор данных; через конфигурацию можно
// подложить внешний YAML-файл той же структуры.
package catalog

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/kbelyakov/psinspect/model"
	"github.com/kbelyakov/psinspect/pkg/validator"
	"github.com/kbelyakov/psinspect/store"

	"github.com/jinzhu/configor"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// Catalog справочник ОРУ. Инициируется через NewCatalog
type Catalog struct {
	ctx       context.Context
	log       *logrus.Entry
	validator *validator.Validator
	orus      []model.Oru
}

// ConfigCatalog конфигурация класса Catalog
type ConfigCatalog struct {
	Log *logrus.Logger

	// Необязательный путь к внешнему YAML-файлу справочника
	Filename string
}

// Структура внешнего YAML-файла справочника
type catalogFile struct {
	Oru []model.Oru
}

// NewCatalog конструктор класса Catalog
func NewCatalog(ctx context.Context, config *ConfigCatalog) (store.CatalogStore, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}

	c := Catalog{
		ctx: ctx,
		log: config.Log.WithFields(map[string]interface{}{
			"module": "catalog",
			"scope":  "store",
		}),
		validator: validator.Get(),
	}

	orus := defaultOrus()
	if config.Filename != "" {
		if _, err := os.Stat(config.Filename); err == nil {
			var file catalogFile
			if err := configor.Load(&file, config.Filename); err != nil {
				return nil, errors.Annotatef(err, "ошибка чтения справочника %s", config.Filename)
			}
			orus = file.Oru
			c.log.Infof("справочник загружен из файла %s", config.Filename)
		} else {
			c.log.Warnf("файл справочника %s недоступен, используется встроенный", config.Filename)
		}
	}

	// Справочник обязан быть корректным: с кривыми данными работать дальше нельзя
	for i := range orus {
		if err := c.validator.Validate(&orus[i]); err != nil {
			return nil, errors.Annotatef(err, "некорректное ОРУ %q в справочнике", orus[i].Name)
		}
		for j := range orus[i].Equipments {
			if err := c.validator.Validate(&orus[i].Equipments[j]); err != nil {
				return nil, errors.Annotatef(err, "некорректное оборудование %q в справочнике", orus[i].Equipments[j].Name)
			}
		}
	}
	c.orus = orus

	return &c, nil
}

// All возвращает все ОРУ в порядке отображения
func (m *Catalog) All() []model.Oru {
	result := make([]model.Oru, len(m.orus))
	copy(result, m.orus)
	return result
}

// ByVoltage возвращает ОРУ по классу напряжения
func (m *Catalog) ByVoltage(voltage string) (*model.Oru, error) {
	for _, oru := range m.orus {
		if oru.Voltage == voltage {
			res := oru
			return &res, nil
		}
	}
	return nil, errors.Errorf("ОРУ с классом напряжения %q не найдено", voltage)
}
