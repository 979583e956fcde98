// Package notify держит очередь уведомлений интерфейса с автоудалением по времени.
package notify

import (
	"context"
	"io/ioutil"
	"sort"
	"time"

	"github.com/kbelyakov/psinspect/model"
	"github.com/kbelyakov/psinspect/service"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const (
	defaultTTL      = 5 * time.Second
	cleanupInterval = time.Minute // Интервал очистки мёртвых записей (сборщик мусора)
)

// Notify очередь уведомлений. Инициируется через NewNotify
type Notify struct {
	ctx   context.Context
	log   *logrus.Entry
	cache *cache.Cache
}

// ConfigNotify конфигурация класса Notify
type ConfigNotify struct {
	Log *logrus.Logger

	// Время жизни уведомления
	TTL time.Duration
}

// NewNotify конструктор класса Notify
func NewNotify(ctx context.Context, config *ConfigNotify) (service.NotifySvc, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}

	ttl := defaultTTL
	if config.TTL != 0 {
		ttl = config.TTL
	}

	n := Notify{
		ctx: ctx,
		log: config.Log.WithFields(map[string]interface{}{
			"module": "notify",
			"scope":  "service",
		}),
		cache: cache.New(ttl, cleanupInterval),
	}

	return &n, nil
}

// Push добавляет уведомление
func (m *Notify) Push(level model.NotifyLevel, message string) {
	notification := model.Notification{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	m.cache.Set(uuid.New().String(), notification, cache.DefaultExpiration)
	if level == model.NotifyError {
		m.log.Warn(message)
	}
}

// Active возвращает ещё не истёкшие уведомления в порядке добавления
func (m *Notify) Active() []model.Notification {
	items := m.cache.Items()
	result := make([]model.Notification, 0, len(items))
	for _, item := range items {
		notification, ok := item.Object.(model.Notification)
		if !ok {
			continue
		}
		result = append(result, notification)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
