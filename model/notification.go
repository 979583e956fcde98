package model

import "time"

// NotifyLevel важность уведомления
type NotifyLevel string

const (
	// NotifyInfo информационное уведомление
	NotifyInfo NotifyLevel = "info"
	// NotifyError уведомление об ошибке
	NotifyError NotifyLevel = "error"
)

// Notification уведомление интерфейса. Живёт ограниченное время и удаляется само
type Notification struct {
	Level     NotifyLevel
	Message   string
	CreatedAt time.Time
}
