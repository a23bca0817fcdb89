package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/food-order-api/internal/domain/entity"
)

const unsplash = "https://images.unsplash.com/"

// demoMenu menú inicial de la aplicación de demostración.
var demoMenu = []entity.MenuItem{
	{Name: "Kung Pao Chicken", Price: decimal.RequireFromString("14.50"), Category: entity.CategoryMain,
		Description: "Stir-fried diced chicken with peanuts in a mildly spicy sauce.",
		ImageURL:    unsplash + "photo-1604908176997-125f25cc6f3d?q=80&w=1013&auto=format&fit=crop"},
	{Name: "Shredded Pork in Garlic Sauce", Price: decimal.RequireFromString("13.50"), Category: entity.CategoryMain,
		Description: "Classic sweet and sour garlicky pork, mildly spicy.",
		ImageURL:    unsplash + "photo-1658713064117-51f51ecfaf69?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Beef Fried Rice", Price: decimal.RequireFromString("12.00"), Category: entity.CategoryMain,
		Description: "Egg fried rice with sliced beef and mixed vegetables.",
		ImageURL:    unsplash + "photo-1723691802798-fa6efc67b2c9?q=80&w=1470&auto=format&fit=crop"},
	{Name: "House Stir-Fried Noodles", Price: decimal.RequireFromString("11.50"), Category: entity.CategoryMain,
		Description: "Wok-fried noodles with mixed vegetables and sliced meat.",
		ImageURL:    unsplash + "photo-1592778024292-d6782d22add7?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Spring Rolls", Price: decimal.RequireFromString("6.00"), Category: entity.CategorySide,
		Description: "Crispy fried spring rolls stuffed with vegetables.",
		ImageURL:    unsplash + "photo-1695712641569-05eee7b37b6d?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Hot and Sour Soup", Price: decimal.RequireFromString("5.00"), Category: entity.CategorySide,
		Description: "Classic hot and sour soup, great as a starter.",
		ImageURL:    unsplash + "photo-1616501268826-ee9731c915d4?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Coke", Price: decimal.RequireFromString("3.00"), Category: entity.CategoryDrink,
		Description: "Chilled carbonated soft drink.",
		ImageURL:    unsplash + "photo-1622483767028-3f66f32aef97?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Iced Lemon Tea", Price: decimal.RequireFromString("3.50"), Category: entity.CategoryDrink,
		Description: "House-made iced lemon tea, lightly sweetened.",
		ImageURL:    unsplash + "photo-1599390719613-912787a6e65a?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Mango Pudding", Price: decimal.RequireFromString("6.50"), Category: entity.CategoryDessert,
		Description: "Creamy mango-flavored pudding dessert.",
		ImageURL:    unsplash + "photo-1561316960-518ca5a32e3a?q=80&w=1472&auto=format&fit=crop"},
	{Name: "Coconut Sago Dessert", Price: decimal.RequireFromString("6.50"), Category: entity.CategoryDessert,
		Description: "Coconut milk dessert with sago pearls and fruit.",
		ImageURL:    unsplash + "photo-1722982971717-9c8e050facb4?q=80&w=1632&auto=format&fit=crop"},
}

// SeedMenu carga el menú de demostración y devuelve cuántos items creó.
func SeedMenu(repo *MenuItemRepo) (int, error) {
	now := time.Now()
	for _, it := range demoMenu {
		item := it
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := repo.Create(&item); err != nil {
			return 0, err
		}
	}
	return len(demoMenu), nil
}
