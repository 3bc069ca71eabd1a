package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMascararChave(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "***"},
		{"abc", "***"},
		{"eyJhbGciOiJIUzI1NiJ9", "eyJhbG***"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, MascararChave(tt.input))
	}
}

func TestNovoLogger(t *testing.T) {
	for _, ambiente := range []string{"development", "production"} {
		logger, err := NovoLogger(ambiente)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
