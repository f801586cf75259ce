package recipe

import "freshtrack/entities"

// recipesByCategory is the static suggestion table. Entries are ordered by
// how quickly they use up a soon-to-expire product.
var recipesByCategory = map[string][]entities.Recipe{
	"Dairy": {
		{
			ID:                 "dairy-pancakes",
			Name:               "Milk Pancakes",
			Description:        "Thin pancakes that use up to half a litre of milk",
			Category:           "Dairy",
			CookingTimeMinutes: 30,
			Servings:           4,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"500 ml milk", "2 eggs", "200 g flour", "1 tbsp sugar", "pinch of salt"},
			Instructions: []string{
				"Whisk eggs with sugar and salt.",
				"Alternate adding milk and flour until the batter is smooth.",
				"Fry thin pancakes in a hot oiled pan, one minute per side.",
			},
		},
		{
			ID:                 "dairy-cheese-bake",
			Name:               "Cottage Cheese Bake",
			Description:        "Oven bake for cottage cheese or curd close to its date",
			Category:           "Dairy",
			CookingTimeMinutes: 50,
			Servings:           6,
			Difficulty:         entities.DifficultyMedium,
			Ingredients:        []string{"500 g cottage cheese", "3 eggs", "4 tbsp semolina", "3 tbsp sugar", "raisins"},
			Instructions: []string{
				"Mix cottage cheese with eggs, semolina and sugar.",
				"Fold in the raisins and transfer into a greased dish.",
				"Bake at 180°C for 40 minutes until golden.",
			},
		},
	},
	"Meat & Fish": {
		{
			ID:                 "meat-stir-fry",
			Name:               "Quick Meat Stir-Fry",
			Description:        "Fast way to cook meat the same day",
			Category:           "Meat & Fish",
			CookingTimeMinutes: 25,
			Servings:           3,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"400 g meat", "1 onion", "1 bell pepper", "soy sauce", "vegetable oil"},
			Instructions: []string{
				"Slice the meat thinly and sear over high heat.",
				"Add sliced onion and pepper, fry for five minutes.",
				"Season with soy sauce and serve with rice.",
			},
		},
		{
			ID:                 "fish-baked",
			Name:               "Baked Fish with Lemon",
			Description:        "Simple oven fish before it turns",
			Category:           "Meat & Fish",
			CookingTimeMinutes: 35,
			Servings:           2,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"2 fish fillets", "1 lemon", "olive oil", "herbs", "salt"},
			Instructions: []string{
				"Place fillets on foil, drizzle with oil and lemon juice.",
				"Season with herbs and salt, wrap the foil.",
				"Bake at 200°C for 20 minutes.",
			},
		},
	},
	"Vegetables": {
		{
			ID:                 "veg-soup",
			Name:               "Vegetable Soup",
			Description:        "Any tired vegetables make a good soup",
			Category:           "Vegetables",
			CookingTimeMinutes: 40,
			Servings:           6,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"mixed vegetables", "1 onion", "2 potatoes", "vegetable stock", "bay leaf"},
			Instructions: []string{
				"Dice everything roughly the same size.",
				"Sweat the onion, add the rest and cover with stock.",
				"Simmer 25 minutes and season to taste.",
			},
		},
		{
			ID:                 "veg-roast",
			Name:               "Sheet-Pan Roasted Vegetables",
			Description:        "One pan, no waste",
			Category:           "Vegetables",
			CookingTimeMinutes: 45,
			Servings:           4,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"vegetables on hand", "olive oil", "garlic", "salt", "pepper"},
			Instructions: []string{
				"Chop vegetables into chunks and toss with oil and garlic.",
				"Spread on a baking sheet in one layer.",
				"Roast at 210°C for 30 minutes, turning once.",
			},
		},
	},
	"Fruits": {
		{
			ID:                 "fruit-smoothie",
			Name:               "Fruit Smoothie",
			Description:        "Soft fruit disappears into a smoothie",
			Category:           "Fruits",
			CookingTimeMinutes: 10,
			Servings:           2,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"2 cups ripe fruit", "1 banana", "200 ml yogurt or juice", "honey"},
			Instructions: []string{
				"Peel and chop the fruit.",
				"Blend with banana and yogurt until smooth.",
				"Sweeten with honey if needed.",
			},
		},
		{
			ID:                 "fruit-crumble",
			Name:               "Apple Crumble",
			Description:        "Wrinkly apples bake better than fresh ones",
			Category:           "Fruits",
			CookingTimeMinutes: 55,
			Servings:           6,
			Difficulty:         entities.DifficultyMedium,
			Ingredients:        []string{"5 apples", "150 g flour", "100 g butter", "80 g sugar", "cinnamon"},
			Instructions: []string{
				"Slice apples into a baking dish and dust with cinnamon.",
				"Rub flour, butter and sugar into crumbs.",
				"Cover the apples and bake at 190°C for 35 minutes.",
			},
		},
	},
	"Bakery": {
		{
			ID:                 "bakery-croutons",
			Name:               "Garlic Croutons",
			Description:        "Stale bread turned into crunchy croutons",
			Category:           "Bakery",
			CookingTimeMinutes: 15,
			Servings:           4,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"stale bread", "olive oil", "2 garlic cloves", "salt"},
			Instructions: []string{
				"Cube the bread and toss with oil, crushed garlic and salt.",
				"Toast in the oven at 180°C for 10 minutes.",
			},
		},
		{
			ID:                 "bakery-french-toast",
			Name:               "French Toast",
			Description:        "Day-old bread soaks up the custard best",
			Category:           "Bakery",
			CookingTimeMinutes: 20,
			Servings:           2,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"4 slices bread", "2 eggs", "100 ml milk", "butter", "sugar"},
			Instructions: []string{
				"Whisk eggs with milk and sugar.",
				"Soak each slice briefly on both sides.",
				"Fry in butter until golden.",
			},
		},
	},
	"Beverages": {
		{
			ID:                 "beverage-fruit-punch",
			Name:               "Mixed Fruit Punch",
			Description:        "Open juices combine into a punch",
			Category:           "Beverages",
			CookingTimeMinutes: 5,
			Servings:           6,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"open juice", "sparkling water", "lemon", "ice", "mint"},
			Instructions: []string{
				"Mix juices with sparkling water to taste.",
				"Add lemon slices, mint and plenty of ice.",
			},
		},
	},
	"Frozen": {
		{
			ID:                 "frozen-fried-rice",
			Name:               "Freezer Fried Rice",
			Description:        "Frozen vegetables straight into the pan",
			Category:           "Frozen",
			CookingTimeMinutes: 20,
			Servings:           3,
			Difficulty:         entities.DifficultyEasy,
			Ingredients:        []string{"frozen vegetable mix", "2 cups cooked rice", "2 eggs", "soy sauce"},
			Instructions: []string{
				"Fry the frozen vegetables until the water cooks off.",
				"Push aside, scramble the eggs in the same pan.",
				"Add rice and soy sauce, toss over high heat.",
			},
		},
	},
}

// ForCategory returns the candidate recipes for a product category, or an
// empty list for categories without entries.
func ForCategory(category string) []entities.Recipe {
	return append([]entities.Recipe(nil), recipesByCategory[category]...)
}

// ByID finds a recipe across all categories.
func ByID(id string) (entities.Recipe, bool) {
	for _, recipes := range recipesByCategory {
		for _, r := range recipes {
			if r.ID == id {
				return r, true
			}
		}
	}
	return entities.Recipe{}, false
}
