package services

import "testing"

func TestValidateCollectsEveryFailure(t *testing.T) {
	t.Parallel()

	err := validate(
		required("username", ""),
		required("email", "someone@example.com"),
		maxLength("relation", "OPENING", 5),
	)
	verr, ok := AsValidation(err)
	if !ok {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(verr.Fields))
	}
	if verr.For("username") == "" || verr.For("relation") == "" {
		t.Fatalf("missing expected fields: %v", verr.Fields)
	}
	if verr.For("email") != "" {
		t.Fatalf("email should have passed, got %q", verr.For("email"))
	}
}

func TestValidateNilWhenAllPass(t *testing.T) {
	t.Parallel()

	err := validate(
		required("username", "baptiste"),
		lengthBetween("username", "baptiste", 4, 15),
		looksLikeEmail("email", "baptiste@gmail.com"),
	)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestLengthBetweenSkipsEmptyValues(t *testing.T) {
	t.Parallel()

	// required() owns the empty case; lengthBetween must not double up.
	if err := validate(lengthBetween("password", "", 8, 80)); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if err := validate(lengthBetween("password", "short", 8, 80)); err == nil {
		t.Fatal("expected a length error")
	}
}

func TestLooksLikeEmail(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"plain", "@lead.com", "trail@", "no-dot@domain"} {
		if err := validate(looksLikeEmail("email", bad)); err == nil {
			t.Fatalf("%q should not validate", bad)
		}
	}
	if err := validate(looksLikeEmail("email", "baptiste@gmail.com")); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}
