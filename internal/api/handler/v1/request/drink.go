package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDrinkRequest struct {
	DrinkMenuID uint   `json:"drinkMenuId"`
	Name        string `json:"name"`
}

func (req *CreateDrinkRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DrinkMenuID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateDrinkRequest struct {
	Name string `json:"name"`
}

func (req *UpdateDrinkRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}
