package strings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgstrings "loanflow/pkg/platform/strings"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "nil stays nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "already clean",
			input: []string{"Email is required", "Phone number is required"},
			want:  []string{"Email is required", "Phone number is required"},
		},
		{
			name:  "duplicates removed keeping first occurrence",
			input: []string{"a", "b", "a", "c", "b"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "whitespace trimmed before comparison",
			input: []string{"  foo ", "foo", "bar"},
			want:  []string{"foo", "bar"},
		},
		{
			name:  "blank entries dropped",
			input: []string{"", "  ", "keep"},
			want:  []string{"keep"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pkgstrings.DedupeAndTrim(tc.input))
		})
	}
}
