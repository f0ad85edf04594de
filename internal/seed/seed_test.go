package seed

import (
	"testing"

	"interviewdeck/internal/domain/models"
)

func TestLoad(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(catalog.Categories) == 0 {
		t.Fatal("catalog has no categories")
	}

	valid := map[string]bool{
		models.DifficultyEasy:   true,
		models.DifficultyMedium: true,
		models.DifficultyHard:   true,
	}
	for _, c := range catalog.Categories {
		if c.Name == "" {
			t.Error("category with empty name")
		}
		if len(c.Questions) == 0 {
			t.Errorf("category %q has no questions", c.Name)
		}
		for _, q := range c.Questions {
			if q.Question == "" {
				t.Errorf("category %q has a question with empty text", c.Name)
			}
			if !valid[q.Difficulty] {
				t.Errorf("category %q question has difficulty %q", c.Name, q.Difficulty)
			}
		}
	}
}
