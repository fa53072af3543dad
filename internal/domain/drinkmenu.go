package domain

// DrinkMenu is a fixed-price pairing menu composed of drinks.
type DrinkMenu struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	PriceTot int    `json:"priceTot"`
}

// Drink is a single drink belonging to a drink menu.
type Drink struct {
	ID          uint   `json:"id"`
	DrinkMenuID uint   `json:"drinkMenuId"`
	Name        string `json:"name"`
}
