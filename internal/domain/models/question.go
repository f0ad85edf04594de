package models

import "time"

// Difficulty levels a question may carry.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Difficulties lists the allowed difficulty values in display order.
var Difficulties = []interface{}{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is an interview question inside a category. Writes are gated by
// the category's write permission; reads are open to any authenticated user.
type Question struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Context    string    `json:"context"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
