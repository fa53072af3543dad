package domain

// CourseMenu is a fixed-price menu composed of courses.
type CourseMenu struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	PriceTot int    `json:"priceTot"`
}

const (
	CourseTypeStarter = "starter"
	CourseTypeMain    = "main"
	CourseTypeDessert = "dessert"
)

// Course is a single dish belonging to a course menu.
type Course struct {
	ID           uint   `json:"id"`
	CourseMenuID uint   `json:"courseMenuId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
}
