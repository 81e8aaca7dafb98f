package catalog

import "context"

// InitialIngredients is the default catalog loaded on first boot.
var InitialIngredients = []Ingredient{
	// Bases
	{ID: "b1", Name: "Thin Crust", Price: 150, Category: CategoryBase, Stock: 50},
	{ID: "b2", Name: "Hand Tossed", Price: 180, Category: CategoryBase, Stock: 45},
	{ID: "b3", Name: "Pan Pizza", Price: 200, Category: CategoryBase, Stock: 40},
	{ID: "b4", Name: "Cheese Burst", Price: 250, Category: CategoryBase, Stock: 35},
	{ID: "b5", Name: "Gluten Free", Price: 220, Category: CategoryBase, Stock: 25},

	// Sauces
	{ID: "s1", Name: "Classic Tomato", Price: 20, Category: CategorySauce, Stock: 60},
	{ID: "s2", Name: "Spicy Marinara", Price: 25, Category: CategorySauce, Stock: 55},
	{ID: "s3", Name: "Creamy Garlic", Price: 30, Category: CategorySauce, Stock: 50},
	{ID: "s4", Name: "BBQ Sauce", Price: 35, Category: CategorySauce, Stock: 45},
	{ID: "s5", Name: "Pesto", Price: 40, Category: CategorySauce, Stock: 30},

	// Cheese
	{ID: "c1", Name: "Mozzarella", Price: 50, Category: CategoryCheese, Stock: 70},
	{ID: "c2", Name: "Cheddar", Price: 60, Category: CategoryCheese, Stock: 65},
	{ID: "c3", Name: "Parmesan", Price: 70, Category: CategoryCheese, Stock: 60},
	{ID: "c4", Name: "Feta", Price: 80, Category: CategoryCheese, Stock: 40},

	// Veggies
	{ID: "v1", Name: "Onions", Price: 15, Category: CategoryVeggie, Stock: 100},
	{ID: "v2", Name: "Bell Peppers", Price: 20, Category: CategoryVeggie, Stock: 90},
	{ID: "v3", Name: "Olives", Price: 30, Category: CategoryVeggie, Stock: 80},
	{ID: "v4", Name: "Mushrooms", Price: 35, Category: CategoryVeggie, Stock: 75},
	{ID: "v5", Name: "Jalapenos", Price: 25, Category: CategoryVeggie, Stock: 85},
	{ID: "v6", Name: "Spinach", Price: 20, Category: CategoryVeggie, Stock: 60},

	// Meats
	{ID: "m1", Name: "Pepperoni", Price: 60, Category: CategoryMeat, Stock: 50},
	{ID: "m2", Name: "Grilled Chicken", Price: 70, Category: CategoryMeat, Stock: 45},
	{ID: "m3", Name: "Sausage", Price: 65, Category: CategoryMeat, Stock: 40},
}

// Seed inserts the default catalog. Existing rows are left untouched.
func Seed(ctx context.Context, repo *Repo) error {
	for _, ing := range InitialIngredients {
		if err := repo.Insert(ctx, ing); err != nil {
			return err
		}
	}
	return nil
}
