// Package session хранит историю осмотров в одном JSON-файле.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kbelyakov/psinspect/model"
	"github.com/kbelyakov/psinspect/pkg/tool"
	"github.com/kbelyakov/psinspect/store"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// File хранилище сессий осмотров в JSON-файле. Инициируется через NewFile.
// Файл переписывается целиком при каждом изменении: на ожидаемых объёмах
// (десятки-тысячи сессий) этого достаточно и не требует встроенной БД
type File struct {
	ctx      context.Context
	log      *logrus.Entry
	filename string
	sessions []model.InspectionSession
}

// ConfigFile конфигурация класса File
type ConfigFile struct {
	Log *logrus.Logger

	// Путь к JSON-файлу с сессиями осмотров
	Filename string
}

// NewFile конструктор класса File. Сразу читает файл данных: отсутствующий файл -
// штатная ситуация первого запуска, нечитаемый файл откладывается в backup и
// работа продолжается с пустой историей
func NewFile(ctx context.Context, config *ConfigFile) (store.SessionStore, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	if config.Filename == "" {
		return nil, errors.New("в конфигурации не указан файл данных")
	}

	f := File{
		ctx: ctx,
		log: config.Log.WithFields(map[string]interface{}{
			"module": "session",
			"scope":  "store",
		}),
		filename: config.Filename,
		sessions: make([]model.InspectionSession, 0),
	}
	f.loadFromFile()

	return &f, nil
}

// GetAll возвращает копию списка всех сессий
func (m *File) GetAll() []model.InspectionSession {
	result := make([]model.InspectionSession, len(m.sessions))
	copy(result, m.sessions)
	return result
}

// Save добавляет сессию в память и переписывает файл данных
func (m *File) Save(session model.InspectionSession) {
	m.sessions = append(m.sessions, session)
	m.saveToFile()
}

// Delete удаляет первую сессию с идентификатором sessionID и переписывает файл данных
func (m *File) Delete(sessionID string) {
	for i, s := range m.sessions {
		if s.ID == sessionID {
			m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
			m.saveToFile()
			m.log.Infof("сессия %s удалена", sessionID)
			return
		}
	}
	m.log.Infof("сессия %s не найдена", sessionID)
}

// Сериализует все сессии и переписывает файл данных целиком. Ошибка записи
// только логируется: данные остаются в памяти до следующей успешной записи
func (m *File) saveToFile() {
	content, err := json.MarshalIndent(m.sessions, "", "  ")
	if err != nil {
		m.log.Errorf("ошибка сериализации сессий: %s", err)
		return
	}
	if err := ioutil.WriteFile(m.filename, content, 0644); err != nil {
		m.log.Errorf("ошибка сохранения в файл %s: %s", m.filename, err)
		return
	}
	m.log.Debugf("данные сохранены в файл %s", m.filename)
}

// Читает файл данных при старте. Повреждённый файл откладывается в backup,
// работа продолжается с пустым списком
func (m *File) loadFromFile() {
	if _, err := os.Stat(m.filename); err != nil {
		if os.IsNotExist(err) {
			m.log.Info("файл данных не существует, будет создан при первом сохранении")
			return
		}
		m.log.Errorf("файл данных %s недоступен: %s", m.filename, err)
		return
	}

	content, err := ioutil.ReadFile(m.filename)
	if err != nil {
		m.log.Errorf("ошибка чтения файла %s: %s", m.filename, err)
		return
	}
	if strings.TrimSpace(string(content)) == "" {
		return
	}

	sessions := make([]model.InspectionSession, 0)
	if err := json.Unmarshal(content, &sessions); err != nil {
		m.log.Errorf("ошибка разбора файла %s: %s", m.filename, err)
		m.quarantine(content)
		return
	}

	m.sessions = sessions
	m.log.Infof("загружено %d сессий из файла %s", len(m.sessions), m.filename)
}

// Откладывает содержимое повреждённого файла данных в backup-файл рядом с оригиналом.
// Неудача создания backup тоже только логируется
func (m *File) quarantine(content []byte) {
	ext := filepath.Ext(m.filename)
	backup := fmt.Sprintf("%s_backup_%d%s",
		strings.TrimSuffix(m.filename, ext), tool.EpochMillis(time.Now()), ext)
	if err := ioutil.WriteFile(backup, content, 0644); err != nil {
		m.log.Errorf("ошибка создания backup повреждённого файла: %s", err)
		return
	}
	m.log.Warnf("создан backup повреждённого файла: %s", backup)
}
