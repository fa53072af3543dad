package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/restauranthjort/hjort-api/internal/domain"
)

type CreateCourseRequest struct {
	CourseMenuID uint   `json:"courseMenuId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
}

func (req *CreateCourseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CourseMenuID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Type, validation.Required, validation.In(domain.CourseTypeStarter, domain.CourseTypeMain, domain.CourseTypeDessert)),
	)
}

type UpdateCourseRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (req *UpdateCourseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Type, validation.Required, validation.In(domain.CourseTypeStarter, domain.CourseTypeMain, domain.CourseTypeDessert)),
	)
}
