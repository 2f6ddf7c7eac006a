package validator

import (
	"ctchen222/solo-tic-tac-toe/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// cell: a row or column index on the board
	if err := validate.RegisterValidation("cell", validateCell); err != nil {
		panic(err)
	}
}

func validateCell(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= game.BorderMin && v <= game.BorderMax
}

func GetValidator() *validator.Validate {
	return validate
}
