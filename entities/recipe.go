package entities

// Recipe difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recipe is an entry of the static suggestion table. Recipes are keyed by the
// product category they help to use up.
type Recipe struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	CookingTimeMinutes int      `json:"cooking_time_minutes"`
	Servings           int      `json:"servings"`
	Difficulty         string   `json:"difficulty"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
}
