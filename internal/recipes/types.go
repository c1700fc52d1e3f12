package recipes

type Recipe struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Description  string     `json:"description,omitempty"`
	Author       string     `json:"author,omitempty"`
	PrepTime     string     `json:"prepTime,omitempty"`
	CookTime     string     `json:"cookTime,omitempty"`
	TotalTime    string     `json:"totalTime,omitempty"`
	Servings     string     `json:"servings,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	ReviewCount  *int       `json:"reviewCount,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
}

// Nutrition values stay free-text as published; nothing parses them into
// numbers.
type Nutrition struct {
	Calories       string `json:"calories,omitempty"`
	Fat            string `json:"fat,omitempty"`
	SaturatedFat   string `json:"saturatedFat,omitempty"`
	UnsaturatedFat string `json:"unsaturatedFat,omitempty"`
	Carbs          string `json:"carbs,omitempty"`
	Sugar          string `json:"sugar,omitempty"`
	Fiber          string `json:"fiber,omitempty"`
	Protein        string `json:"protein,omitempty"`
	Cholesterol    string `json:"cholesterol,omitempty"`
	Sodium         string `json:"sodium,omitempty"`
}

func (n *Nutrition) empty() bool {
	return *n == Nutrition{}
}

// SearchResult is the lightweight projection used before a full recipe fetch.
type SearchResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
	Description string   `json:"description,omitempty"`
}
