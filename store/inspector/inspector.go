// Package inspector хранит реестр осматривающих в локальной базе sqlite.
package inspector

import (
	"context"
	"io/ioutil"

	"github.com/kbelyakov/psinspect/model"
	"github.com/kbelyakov/psinspect/pkg/validator"
	"github.com/kbelyakov/psinspect/store"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Ключ настройки с идентификатором текущего выбранного осматривающего
const settingCurrentInspector = "current_inspector"

// ErrDuplicateName осматривающий с таким именем уже есть в реестре
var ErrDuplicateName = errors.New("осматривающий с таким именем уже существует")

// Db реестр осматривающих в БД. Инициируется через NewDb
type Db struct {
	ctx       context.Context
	log       *logrus.Entry
	db        *gorm.DB
	validator *validator.Validator
}

// ConfigDb конфигурация класса Db
type ConfigDb struct {
	Log *logrus.Logger

	// Путь к файлу базы данных
	DbFile string
}

// NewDb конструктор класса Db
func NewDb(ctx context.Context, config *ConfigDb) (store.InspectorStore, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	if config.DbFile == "" {
		return nil, errors.New("в конфигурации не указан файл БД")
	}

	// Подключаемся к БД и запускаем миграции
	conn, err := gorm.Open(sqlite.Open(config.DbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, errors.Annotate(err, "ошибка подключения к файлу БД")
	}
	err = conn.AutoMigrate(Inspector{}, Setting{})
	if err != nil {
		return nil, errors.Annotate(err, "ошибка миграции БД")
	}

	db := Db{
		ctx: ctx,
		log: config.Log.WithFields(map[string]interface{}{
			"module": "inspector",
			"scope":  "store",
		}),
		validator: validator.Get(),
		db:        conn,
	}

	return &db, nil
}

// IsNotFound проверяет, что ошибка err обозначает, что запись не найдена
func (m Db) IsNotFound(err error) bool {
	return err != nil && errors.Cause(err).Error() == gorm.ErrRecordNotFound.Error()
}

// IsDuplicate проверяет, что ошибка err обозначает дубликат имени
func (m Db) IsDuplicate(err error) bool {
	return err != nil && errors.Cause(err) == ErrDuplicateName
}

// Add добавляет осматривающего в реестр. Имя сравнивается точно, с учётом регистра:
// повторное имя отклоняется с ErrDuplicateName
func (m Db) Add(inspector model.Inspector) (*model.Inspector, error) {
	if err := m.validator.Validate(&inspector); err != nil {
		return nil, errors.Annotate(err, "ошибка валидации")
	}

	var exists Inspector
	err := m.db.Where("name = ?", inspector.Name).Take(&exists).Error
	if err == nil {
		m.log.Warnf("осматривающий с именем %q уже есть в реестре", inspector.Name)
		return nil, ErrDuplicateName
	}
	if err.Error() != gorm.ErrRecordNotFound.Error() {
		return nil, errors.Trace(err)
	}

	record := Inspector{}
	record.FromInspector(inspector)
	if err := m.db.Create(&record).Error; err != nil {
		return nil, errors.Annotate(err, "ошибка добавления в БД")
	}
	res := record.ToInspector()
	return &res, nil
}

// GetAll возвращает всех осматривающих в порядке добавления
func (m Db) GetAll() ([]model.Inspector, error) {
	records := make([]Inspector, 0)
	if err := m.db.Order("id").Find(&records).Error; err != nil {
		return nil, errors.Trace(err)
	}
	result := make([]model.Inspector, 0, len(records))
	for _, r := range records {
		result = append(result, r.ToInspector())
	}
	return result, nil
}

// Get возвращает осматривающего по внешнему идентификатору
func (m Db) Get(id string) (*model.Inspector, error) {
	if id == "" {
		return nil, errors.New("передан пустой идентификатор")
	}
	var record Inspector
	if err := m.db.Where("uid = ?", id).Take(&record).Error; err != nil {
		if err.Error() == gorm.ErrRecordNotFound.Error() {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Trace(err)
	}
	res := record.ToInspector()
	return &res, nil
}

// SetCurrent запоминает текущего выбранного осматривающего
func (m Db) SetCurrent(id string) error {
	if _, err := m.Get(id); err != nil {
		return errors.Trace(err)
	}

	var setting Setting
	err := m.db.Where("key = ?", settingCurrentInspector).Take(&setting).Error
	if err != nil {
		if err.Error() != gorm.ErrRecordNotFound.Error() {
			return errors.Trace(err)
		}
		setting = Setting{Key: settingCurrentInspector, Value: id}
		if err := m.db.Create(&setting).Error; err != nil {
			return errors.Annotate(err, "ошибка сохранения настройки")
		}
		return nil
	}

	setting.Value = id
	if err := m.db.Model(&setting).Updates(setting).Error; err != nil {
		return errors.Annotate(err, "ошибка обновления настройки")
	}
	return nil
}

// Current возвращает текущего выбранного осматривающего. Если выбор ещё не делался,
// возвращается gorm.ErrRecordNotFound
func (m Db) Current() (*model.Inspector, error) {
	var setting Setting
	if err := m.db.Where("key = ?", settingCurrentInspector).Take(&setting).Error; err != nil {
		if err.Error() == gorm.ErrRecordNotFound.Error() {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Trace(err)
	}
	inspector, err := m.Get(setting.Value)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return inspector, nil
}
