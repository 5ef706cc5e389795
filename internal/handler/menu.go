package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MenuItem is a dish on the static menu. There is no menu management
// yet, so the list is fixed in code.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsAvailable bool    `json:"isAvailable"`
	Popularity  float64 `json:"popularity"`
}

var menuItems = []MenuItem{
	{
		ID:          1,
		Name:        "Grilled Salmon",
		Category:    "Main Course",
		Price:       28.99,
		Description: "Fresh Atlantic salmon with lemon butter sauce",
		IsAvailable: true,
		Popularity:  4.8,
	},
	{
		ID:          2,
		Name:        "Caesar Salad",
		Category:    "Appetizer",
		Price:       12.99,
		Description: "Crisp romaine lettuce with Caesar dressing",
		IsAvailable: true,
		Popularity:  4.5,
	},
	{
		ID:          3,
		Name:        "Chocolate Lava Cake",
		Category:    "Dessert",
		Price:       9.99,
		Description: "Warm chocolate cake with molten center",
		IsAvailable: true,
		Popularity:  4.9,
	},
}

// Menu returns the static menu.
func Menu(c echo.Context) error {
	return ok(c, http.StatusOK, menuItems)
}
