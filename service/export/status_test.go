package export

import (
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		entered    string
		normalSpec string
		want       Status
	}{
		{
			name:       "пустая норма",
			entered:    "5",
			normalSpec: "",
			want:       NotChecked,
		},
		{
			name:       "пустое значение",
			entered:    "",
			normalSpec: "10-20",
			want:       NotChecked,
		},
		{
			name:       "нижняя граница включительно",
			entered:    "10",
			normalSpec: "10-20",
			want:       Normal,
		},
		{
			name:       "верхняя граница включительно",
			entered:    "20",
			normalSpec: "10-20",
			want:       Normal,
		},
		{
			name:       "чуть выше верхней границы",
			entered:    "20.01",
			normalSpec: "10-20",
			want:       OutOfRange,
		},
		{
			name:       "не число при числовой норме",
			entered:    "abc",
			normalSpec: "10-20",
			want:       NotChecked,
		},
		{
			name:       "запятая как десятичный разделитель",
			entered:    "0,65",
			normalSpec: "0,6-0,7",
			want:       Normal,
		},
		{
			name:       "точка при норме с запятой",
			entered:    "0.75",
			normalSpec: "0,6-0,7",
			want:       OutOfRange,
		},
		{
			name:       "словесная норма",
			entered:    "норма",
			normalSpec: "норма",
			want:       Normal,
		},
		{
			name:       "словесное значение при числовой норме",
			entered:    "исправно",
			normalSpec: "10-20",
			want:       Normal,
		},
		{
			name:       "словесная норма с учётом регистра",
			entered:    "Норма",
			normalSpec: "норма",
			want:       OutOfRange,
		},
		{
			name:       "точное совпадение",
			entered:    "вкл",
			normalSpec: "вкл",
			want:       Normal,
		},
		{
			name:       "несовпадение литерала",
			entered:    "откл",
			normalSpec: "вкл",
			want:       OutOfRange,
		},
		{
			name:       "диапазон из трёх частей",
			entered:    "5",
			normalSpec: "1-2-3",
			want:       NotChecked,
		},
		{
			name:       "кривой диапазон",
			entered:    "5",
			normalSpec: "а-б",
			want:       NotChecked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.entered, tt.normalSpec); got != tt.want {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.entered, tt.normalSpec, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if NotChecked.String() != "Не проверено" {
		t.Errorf("NotChecked.String() = %q", NotChecked.String())
	}
	if Normal.String() != "Норма" {
		t.Errorf("Normal.String() = %q", Normal.String())
	}
	if OutOfRange.String() != "Не норма" {
		t.Errorf("OutOfRange.String() = %q", OutOfRange.String())
	}
}
