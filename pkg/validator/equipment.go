package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/kbelyakov/psinspect/model"
)

// Валидатор корректного типа оборудования
func validatorEquipmentType(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(model.EquipmentType)
	if !ok {
		return false
	}
	for _, t := range model.EquipmentTypes {
		if t == value {
			return true
		}
	}
	return false
}
