package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitPlatforms(t *testing.T) {
	testCases := []struct {
		in       string
		expected []string
	}{
		{"", nil},
		{"  ", nil},
		{"PS2", []string{"PS2"}},
		{"PS2,Xbox", []string{"PS2", "Xbox"}},
		{" PS2 , Xbox , ", []string{"PS2", "Xbox"}},
	}
	for _, tc := range testCases {
		diff := cmp.Diff(tc.expected, splitPlatforms(tc.in))
		if diff != "" {
			t.Errorf("splitPlatforms(%q): %s", tc.in, diff)
		}
	}
}
