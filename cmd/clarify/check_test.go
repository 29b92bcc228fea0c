package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSyntaxProblem(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"unterminated string", "x = 'abc\n", "unterminated string literal"},
		{"never closed", "a = (1, 2\n", "'(' was never closed"},
		{"unmatched closer", "a = 1)\n", "unmatched ')'"},
		{"mismatched pair", "d = {1: 2)\n", "does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := findSyntaxProblem("<check>", tt.source)
			require.NotNil(t, e)
			assert.Contains(t, e.SafeMessage(), tt.message)
			assert.Equal(t, "<check>", e.Filename)
			assert.Greater(t, e.Lineno, 0)
		})
	}
}

func TestFindSyntaxProblemCleanSource(t *testing.T) {
	source := "def add(a, b):\n    return a + b\n"
	assert.Nil(t, findSyntaxProblem("<check>", source))
}
