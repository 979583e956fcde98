package inspector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kbelyakov/psinspect/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *Db {
	db, err := NewDb(context.Background(), &ConfigDb{
		DbFile: filepath.Join(t.TempDir(), "inspectors.sqlite"),
	})
	require.NoError(t, err)
	return db.(*Db)
}

func TestNewDb(t *testing.T) {
	tests := []struct {
		name    string
		config  *ConfigDb
		wantErr bool
	}{
		{
			name:    "корректный",
			config:  &ConfigDb{DbFile: "inspectors.sqlite"},
			wantErr: false,
		},
		{
			name:    "без конфигурации",
			config:  nil,
			wantErr: true,
		},
		{
			name:    "без файла БД",
			config:  &ConfigDb{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config != nil && tt.config.DbFile != "" {
				tt.config.DbFile = filepath.Join(t.TempDir(), tt.config.DbFile)
			}
			_, err := NewDb(context.Background(), tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDb() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Двух осматривающих с одинаковым именем быть не может
func TestDbAddDuplicate(t *testing.T) {
	db := newTestDb(t)

	first, err := db.Add(model.Inspector{ID: uuid.New().String(), Name: "Иванов А.А.", Position: "мастер"})
	require.NoError(t, err)
	require.Equal(t, "Иванов А.А.", first.Name)

	_, err = db.Add(model.Inspector{ID: uuid.New().String(), Name: "Иванов А.А.", Position: "электромонтёр"})
	require.Error(t, err)
	assert.True(t, db.IsDuplicate(err))

	all, err := db.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Сравнение имён точное, с учётом регистра
	_, err = db.Add(model.Inspector{ID: uuid.New().String(), Name: "иванов А.А."})
	require.NoError(t, err)
}

func TestDbAddValidation(t *testing.T) {
	db := newTestDb(t)

	// Имя обрезается до сравнения и сохранения
	added, err := db.Add(model.Inspector{ID: uuid.New().String(), Name: "  Петров П.П.  "})
	require.NoError(t, err)
	assert.Equal(t, "Петров П.П.", added.Name)

	// Пустое имя не проходит валидацию
	_, err = db.Add(model.Inspector{ID: uuid.New().String(), Name: "   "})
	require.Error(t, err)
}

func TestDbGet(t *testing.T) {
	db := newTestDb(t)

	added, err := db.Add(model.Inspector{ID: uuid.New().String(), Name: "Сидоров С.С.", Position: "начальник смены"})
	require.NoError(t, err)

	got, err := db.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, *added, *got)

	_, err = db.Get(uuid.New().String())
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

// Выбор текущего осматривающего переживает переоткрытие базы
func TestDbCurrent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inspectors.sqlite")

	db, err := NewDb(context.Background(), &ConfigDb{DbFile: file})
	require.NoError(t, err)

	// Пока выбор не делался - запись не найдена
	_, err = db.Current()
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))

	first, err := db.Add(model.Inspector{ID: uuid.New().String(), Name: "Иванов А.А."})
	require.NoError(t, err)
	second, err := db.Add(model.Inspector{ID: uuid.New().String(), Name: "Петров П.П."})
	require.NoError(t, err)

	require.NoError(t, db.SetCurrent(first.ID))
	current, err := db.Current()
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)

	// Повторный выбор обновляет настройку
	require.NoError(t, db.SetCurrent(second.ID))

	reopened, err := NewDb(context.Background(), &ConfigDb{DbFile: file})
	require.NoError(t, err)
	current, err = reopened.Current()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	// Выбрать несуществующего нельзя
	err = db.SetCurrent(uuid.New().String())
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}
