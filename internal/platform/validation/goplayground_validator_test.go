package validation_test

import (
	"testing"

	"github.com/cinelog/cinelog/internal/platform/validation"
)

type signUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	validator := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name       string
		input      signUpInput
		wantFields []string
	}{
		{"valid input", signUpInput{Email: "a@x.com", Password: "longenough"}, nil},
		{"missing email", signUpInput{Password: "longenough"}, []string{"email"}},
		{"bad email", signUpInput{Email: "not-an-email", Password: "longenough"}, []string{"email"}},
		{"short password", signUpInput{Email: "a@x.com", Password: "short"}, []string{"password"}},
		{"everything wrong", signUpInput{}, []string{"email", "password"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := validator.ValidateStruct(tt.input)
			if tt.wantFields == nil {
				if errs != nil {
					t.Fatalf("ValidateStruct() = %v, want: nil", errs)
				}
				return
			}

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("len(errs) = %d, want: %d (%v)", len(errs), len(tt.wantFields), errs)
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("errs is missing field %q: %v", field, errs)
				}
			}
		})
	}
}
