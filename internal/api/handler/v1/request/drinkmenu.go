package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateDrinkMenuRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	PriceTot int    `json:"priceTot"`
}

func (req *UpdateDrinkMenuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(0, 50)),
		validation.Field(&req.Subtitle, validation.Length(0, 50)),
		validation.Field(&req.PriceTot, validation.Required, validation.Min(1)),
	)
}
