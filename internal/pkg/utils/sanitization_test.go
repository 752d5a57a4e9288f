package utils

import (
	"jondonfit-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSendMagicLinkRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.SendMagicLink{
			Email: "  TEST@EXAMPLE.COM  ",
			Mode:  "login",
		}

		SanitizeSendMagicLinkRequest(request)

		assert.Equal(t, "test@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Name Sanitization", func(t *testing.T) {
		request := &requests.SendMagicLink{
			Email: "test@example.com",
			Name:  "  Ann  ",
			Mode:  "register",
		}

		SanitizeSendMagicLinkRequest(request)

		assert.Equal(t, "Ann", request.Name, "name should be trimmed but keep its casing")
	})

	t.Run("Mode Sanitization", func(t *testing.T) {
		request := &requests.SendMagicLink{
			Email: "test@example.com",
			Mode:  " REGISTER ",
		}

		SanitizeSendMagicLinkRequest(request)

		assert.Equal(t, "register", request.Mode, "mode should be lowercase and trimmed")
	})
}

func TestSanitizeVerifyMagicLinkRequest(t *testing.T) {
	request := &requests.VerifyMagicLink{
		Token: "  AB12CD  ",
	}

	SanitizeVerifyMagicLinkRequest(request)

	assert.Equal(t, "ab12cd", request.Token, "token should be lowercase and trimmed")
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: "a@example.com", expected: "a@example.com"},
		{name: "uppercase", input: "A@EXAMPLE.COM", expected: "a@example.com"},
		{name: "surrounding whitespace", input: "\t a@example.com \n", expected: "a@example.com"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeEmail(tc.input))
		})
	}
}
