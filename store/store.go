package store

import (
	"github.com/kbelyakov/psinspect/model"
)

// SessionStore репозиторий истории осмотров. Единственный владелец файла данных:
// держит сессии в памяти и переписывает файл целиком при каждом изменении
//go:generate mockery --dir . --name SessionStore --output ./mocks
type SessionStore interface {
	// Возвращает копию списка всех сессий. Порядок не гарантируется,
	// сортировка для отображения - забота вызывающего
	GetAll() []model.InspectionSession

	// Добавляет сессию в память и переписывает файл данных. Ошибка записи на диск
	// только логируется: состояние в памяти не откатывается и попадёт на диск при
	// следующей успешной записи
	Save(session model.InspectionSession)

	// Удаляет первую сессию с указанным идентификатором и переписывает файл данных.
	// Отсутствие сессии - не ошибка, только запись в лог
	Delete(sessionID string)
}

// InspectorStore реестр осматривающих с указателем на текущего выбранного.
// Удаление осматривающих не предусмотрено
//go:generate mockery --dir . --name InspectorStore --output ./mocks
type InspectorStore interface {
	// Проверяет, что ошибка err обозначает, что запись не найдена
	IsNotFound(err error) bool

	// Добавляет осматривающего. Двух осматривающих с одинаковым именем быть не может:
	// повторное имя отклоняется ошибкой, проверяемой через IsDuplicate
	Add(inspector model.Inspector) (*model.Inspector, error)

	// Проверяет, что ошибка err обозначает дубликат имени
	IsDuplicate(err error) bool

	// Возвращает всех осматривающих
	GetAll() ([]model.Inspector, error)

	// Возвращает осматривающего по идентификатору. Отсутствие проверяется через IsNotFound
	Get(id string) (*model.Inspector, error)

	// Запоминает текущего выбранного осматривающего
	SetCurrent(id string) error

	// Возвращает текущего выбранного осматривающего. Если выбор ещё не делался,
	// возвращается ошибка, проверяемая через IsNotFound
	Current() (*model.Inspector, error)
}

// CatalogStore справочник ОРУ и оборудования. Только чтение: формируется один раз
// при старте программы
//go:generate mockery --dir . --name CatalogStore --output ./mocks
type CatalogStore interface {
	// Возвращает все ОРУ в порядке отображения
	All() []model.Oru

	// Возвращает ОРУ по классу напряжения. Отсутствие - ошибка
	ByVoltage(voltage string) (*model.Oru, error)
}
