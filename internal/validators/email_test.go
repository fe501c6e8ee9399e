package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailDomainValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"ana@sub.example.com.br", true},
		{"ANA@Example.COM", true},
		{"ana@mailinator.com", false},
		{"ana@MAILINATOR.com", false},
		{"ana@yopmail.com", false},
		{"ana@", false},
		{"@example.com", false},
		{"sem-arroba", false},
		{"ana@semponto", false},
		{"ana@.example.com", false},
		{"ana@example.com.", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEmailDomainValid(tt.email), tt.email)
	}
}
