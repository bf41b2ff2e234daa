package models

// Level represents the difficulty level of a course
type Level string

// Course difficulty levels
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// IsValid checks if the level is one of the known levels
func (l Level) IsValid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

// Course represents a course in the marketplace
type Course struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Language      string  `json:"language"`
	Level         Level   `json:"level"`
	DurationWeeks int     `json:"durationWeeks"`
	Price         float64 `json:"price"` // 0 = free
	PriceDisplay  string  `json:"priceDisplay,omitempty"`
	Published     bool    `json:"published"`
	TeacherID     int     `json:"teacherId"`
	Instructor    string  `json:"instructor"`
	StudentCount  int     `json:"studentCount"`
	Rating        float64 `json:"rating"`
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Language      string  `json:"language"`
	Level         Level   `json:"level"`
	DurationWeeks int     `json:"durationWeeks"`
	Price         float64 `json:"price"`
}

// UpdateCourseRequest represents a request to update a course (partial update)
type UpdateCourseRequest struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Language      string   `json:"language,omitempty"`
	Level         Level    `json:"level,omitempty"`
	DurationWeeks *int     `json:"durationWeeks,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

// CatalogQuery holds the catalog listing parameters
type CatalogQuery struct {
	Search   string
	Language string
	Level    string
	Sort     SortKey
}

// SortKey selects the catalog ordering
type SortKey string

// Catalog sort keys
const (
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)
