package services

import (
	"testing"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid title", "Kajian Bulanan", false},
		{"valid with punctuation", "Donasi: Renovasi Masjid (Tahap 2)", false},
		{"empty", "", true},
		{"only whitespace", "   ", true},
		{"tab character (control)", "Kajian\tBulanan", true},
		{"null byte (control)", "Kajian\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTitle(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItem(t *testing.T) {
	base := models.Base{Title: "Valid"}

	tests := []struct {
		name    string
		item    models.Item
		wantErr bool
	}{
		{"nil item", nil, true},
		{"blank title", &models.News{Base: models.Base{Title: " "}}, true},
		{"event same day", &models.Event{Base: base, StartDate: "2025-01-01", EndDate: "2025-01-01"}, false},
		{"event end before start", &models.Event{Base: base, StartDate: "2025-01-02", EndDate: "2025-01-01"}, true},
		{"donation with target", &models.Donation{Base: base, Target: 1000, Collected: 10}, false},
		{"donation collected without target", &models.Donation{Base: base, Collected: 10}, true},
		{"quiz answer in range", &models.Quiz{Base: base, Questions: []models.QuizQuestion{{Prompt: "?", Options: []string{"a", "b"}, Answer: 1}}}, false},
		{"quiz answer out of range", &models.Quiz{Base: base, Questions: []models.QuizQuestion{{Prompt: "?", Options: []string{"a", "b"}, Answer: 2}}}, true},
		{"podcast", &models.Podcast{Base: base}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateItem error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
