package services

import (
	"fmt"
	"strings"
)

// Validation checks are small closures composed per form. Each returns a
// *FieldError on failure, nil otherwise; validate collects them all so a
// submission surfaces every inline message in one round trip.
type check func() *FieldError

func validate(checks ...check) error {
	var fields []FieldError
	for _, c := range checks {
		if ferr := c(); ferr != nil {
			fields = append(fields, *ferr)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func required(field, value string) check {
	return func() *FieldError {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Message: "Champ obligatoire"}
		}
		return nil
	}
}

func lengthBetween(field, value string, min, max int) check {
	return func() *FieldError {
		if value == "" {
			// required() reports empty values; don't double up
			return nil
		}
		if len(value) < min || len(value) > max {
			return &FieldError{
				Field:   field,
				Message: fmt.Sprintf("Doit faire entre %d et %d caractères", min, max),
			}
		}
		return nil
	}
}

func maxLength(field, value string, max int) check {
	return func() *FieldError {
		if len(value) > max {
			return &FieldError{
				Field:   field,
				Message: fmt.Sprintf("Ne peux pas faire plus de %d caractères", max),
			}
		}
		return nil
	}
}

func looksLikeEmail(field, value string) check {
	return func() *FieldError {
		if value == "" {
			return nil
		}
		at := strings.Index(value, "@")
		if at < 1 || at == len(value)-1 || !strings.Contains(value[at:], ".") {
			return &FieldError{Field: field, Message: "Email invalide"}
		}
		return nil
	}
}
