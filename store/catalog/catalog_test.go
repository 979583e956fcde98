package catalog

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/kbelyakov/psinspect/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		config  *ConfigCatalog
		wantErr bool
	}{
		{
			name:    "встроенный справочник",
			config:  &ConfigCatalog{},
			wantErr: false,
		},
		{
			name:    "без конфигурации",
			config:  nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(context.Background(), tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Встроенный справочник проходит собственную валидацию и покрывает все группы ОРУ
func TestCatalogBuiltin(t *testing.T) {
	c, err := NewCatalog(context.Background(), &ConfigCatalog{})
	require.NoError(t, err)

	orus := c.All()
	require.NotEmpty(t, orus)

	voltages := make(map[string]bool)
	for _, oru := range orus {
		voltages[oru.Voltage] = true
		require.NotEmpty(t, oru.Equipments, "ОРУ %q без оборудования", oru.Name)
		for _, e := range oru.Equipments {
			assert.NotEmpty(t, e.ID)
			assert.NotEmpty(t, e.Parameters, "оборудование %q без параметров", e.Name)
		}
	}
	assert.True(t, voltages["500"])
	assert.True(t, voltages["220"])
	assert.True(t, voltages[model.VoltageCombined])
	assert.True(t, voltages[model.VoltageBuildings])
}

func TestCatalogByVoltage(t *testing.T) {
	c, err := NewCatalog(context.Background(), &ConfigCatalog{})
	require.NoError(t, err)

	oru, err := c.ByVoltage("220")
	require.NoError(t, err)
	assert.Equal(t, "ОРУ-220", oru.Name)

	_, err = c.ByVoltage("110")
	require.Error(t, err)
}

// All отдаёт копию: правки снаружи не задевают справочник
func TestCatalogAllCopy(t *testing.T) {
	c, err := NewCatalog(context.Background(), &ConfigCatalog{})
	require.NoError(t, err)

	orus := c.All()
	orus[0].Name = "испорчено"

	assert.NotEqual(t, "испорчено", c.All()[0].Name)
}

// Внешний YAML-файл замещает встроенный справочник
func TestCatalogExternalFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `oru:
  - voltage: "110"
    name: ОРУ-110
    equipments:
      - id: В-110 Луговая
        name: Выключатель 110 кВ Луговая
        type: CIRCUIT_BREAKER
        parameters:
          - name: Давление элегаза
            unit: МПа
            normalvalue: 0,5-0,6
`
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0644))

	c, err := NewCatalog(context.Background(), &ConfigCatalog{Filename: file})
	require.NoError(t, err)

	orus := c.All()
	require.Len(t, orus, 1)
	assert.Equal(t, "110", orus[0].Voltage)
	require.Len(t, orus[0].Equipments, 1)
	assert.Equal(t, model.CircuitBreaker, orus[0].Equipments[0].Type)
}

// Справочник с неизвестным типом оборудования отвергается на старте
func TestCatalogExternalFileInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `oru:
  - voltage: "110"
    name: ОРУ-110
    equipments:
      - id: В-110 Луговая
        name: Выключатель 110 кВ Луговая
        type: НЕВЕДОМЫЙ
`
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0644))

	_, err := NewCatalog(context.Background(), &ConfigCatalog{Filename: file})
	require.Error(t, err)
}

// Отсутствующий файл не фатален: используется встроенный набор
func TestCatalogMissingFileFallback(t *testing.T) {
	c, err := NewCatalog(context.Background(), &ConfigCatalog{
		Filename: filepath.Join(t.TempDir(), "нет такого.yaml"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.All())
}
