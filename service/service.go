package service

import (
	"github.com/kbelyakov/psinspect/model"
)

// ExportSvc выгрузка истории осмотров в CSV-файлы для табличного редактора.
// Единственное место, где ошибки не гасятся внутри, а возвращаются вызывающему:
// интерфейсу нужно знать, что выгрузка не состоялась
//go:generate mockery --dir . --name ExportSvc --output ./mocks
type ExportSvc interface {
	// Выгружает все сессии в один файл. Возвращает путь к созданному файлу
	ExportAll(sessions []model.InspectionSession) (string, error)

	// Выгружает одну сессию. Возвращает путь к созданному файлу
	ExportSession(session model.InspectionSession) (string, error)
}

// NotifySvc очередь уведомлений интерфейса с автоудалением по времени
//go:generate mockery --dir . --name NotifySvc --output ./mocks
type NotifySvc interface {
	// Добавляет уведомление
	Push(level model.NotifyLevel, message string)

	// Возвращает ещё не истёкшие уведомления в порядке добавления
	Active() []model.Notification
}
