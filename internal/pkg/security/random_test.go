package security_test

import (
	"testing"

	"github.com/cinelog/cinelog/internal/pkg/security"
)

func TestGenerateOTP(t *testing.T) {
	t.Parallel()

	const digits = 6
	otp, err := security.GenerateOTP(digits)
	if err != nil {
		t.Fatal(err)
	}

	if len(otp) != digits {
		t.Errorf("len(otp) = %d, want: %d", len(otp), digits)
	}

	for _, c := range otp {
		if c < '0' || c > '9' {
			t.Errorf("otp %q contains non-digit %q", otp, c)
		}
	}
}

func TestGenerateOTP_ZeroDigits(t *testing.T) {
	t.Parallel()

	if _, err := security.GenerateOTP(0); err == nil {
		t.Error("GenerateOTP(0) error = nil, want error")
	}
}

func TestGenerateRandomBytesHex(t *testing.T) {
	t.Parallel()

	const length = 30
	token, err := security.GenerateRandomBytesHex(length)
	if err != nil {
		t.Fatal(err)
	}

	if len(token) != length*2 {
		t.Errorf("len(token) = %d, want: %d", len(token), length*2)
	}

	other, err := security.GenerateRandomBytesHex(length)
	if err != nil {
		t.Fatal(err)
	}

	if token == other {
		t.Error("two generated tokens are identical")
	}
}
