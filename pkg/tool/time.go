package tool

import "time"

// EpochMillis время t в миллисекундах с начала эпохи (для имён файлов выгрузки
// и backup-файлов)
func EpochMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}
