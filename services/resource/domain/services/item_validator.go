// Package services contains stateless domain services for the resource bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// ValidateTitle enforces business rules for titles beyond the structural
// tag validation done at the HTTP boundary.
//
// Business rules:
//   - Must not be blank
//   - No control characters (Unicode category Cc)
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be blank")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("title must not contain control characters")
		}
	}

	return nil
}

// ValidateItem performs cross-field validation on a resource variant before
// it is persisted.
func ValidateItem(item models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateTitle(item.ItemBase().Title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	switch v := item.(type) {
	case *models.Event:
		// ISO dates compare lexically.
		if v.StartDate != "" && v.EndDate != "" && v.EndDate < v.StartDate {
			return fmt.Errorf("endDate %s is before startDate %s", v.EndDate, v.StartDate)
		}
	case *models.Donation:
		if v.Collected > 0 && v.Target == 0 {
			return fmt.Errorf("collected amount requires a target")
		}
	case *models.Quiz:
		for i, q := range v.Questions {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return fmt.Errorf("question %d: answer index %d out of range", i+1, q.Answer)
			}
		}
	}

	return nil
}
