package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateCourseMenuRequest struct {
	Title    string `json:"title"`
	PriceTot int    `json:"priceTot"`
}

func (req *UpdateCourseMenuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.PriceTot, validation.Required, validation.Min(1)),
	)
}
