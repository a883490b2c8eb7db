package pricecharting

import (
	"testing"

	"pricetracker/lib/inventory"

	"github.com/google/go-cmp/cmp"
)

func TestNewLookupKey(t *testing.T) {
	testCases := []struct {
		name     string
		row      inventory.Row
		expected LookupKey
	}{
		{
			name: "pal region prefixes platform",
			row:  inventory.Row{Title: "Final Fantasy VII", Platform: "PS2", Region: "PAL", Condition: "C"},
			expected: LookupKey{
				PlatformSlug: "ps2",
				RegionPrefix: "pal-",
				TitleSlug:    "final-fantasy-vii",
				Condition:    "C",
			},
		},
		{
			name: "pal match is case insensitive",
			row:  inventory.Row{Title: "Ico", Platform: "PS2", Region: "pAl", Condition: "L"},
			expected: LookupKey{
				PlatformSlug: "ps2",
				RegionPrefix: "pal-",
				TitleSlug:    "ico",
				Condition:    "L",
			},
		},
		{
			name: "ntsc-j maps to jp prefix",
			row:  inventory.Row{Title: "Mother 3", Platform: "GBA", Region: "NTSC-J", Condition: "C"},
			expected: LookupKey{
				PlatformSlug: "gba",
				RegionPrefix: "jp-",
				TitleSlug:    "mother-3",
				Condition:    "C",
			},
		},
		{
			name: "other regions get no prefix",
			row:  inventory.Row{Title: "Halo 2", Platform: "Xbox", Region: "NTSC-U", Condition: "L"},
			expected: LookupKey{
				PlatformSlug: "xbox",
				RegionPrefix: "",
				TitleSlug:    "halo-2",
				Condition:    "L",
			},
		},
		{
			name: "multi word platform and untrimmed cells",
			row:  inventory.Row{Title: "  Super Mario World ", Platform: " Super Nintendo", Region: " PAL ", Condition: " C "},
			expected: LookupKey{
				PlatformSlug: "super-nintendo",
				RegionPrefix: "pal-",
				TitleSlug:    "super-mario-world",
				Condition:    "C",
			},
		},
		{
			name: "unknown condition passes through unvalidated",
			row:  inventory.Row{Title: "Tetris", Platform: "Game Boy", Region: "PAL", Condition: "X"},
			expected: LookupKey{
				PlatformSlug: "game-boy",
				RegionPrefix: "pal-",
				TitleSlug:    "tetris",
				Condition:    "X",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewLookupKey(tc.row)
			diff := cmp.Diff(tc.expected, got)
			if diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestLookupKeyURL(t *testing.T) {
	key := NewLookupKey(inventory.Row{
		Title:     "Final Fantasy VII",
		Platform:  "PS1",
		Region:    "PAL",
		Condition: "C",
	})
	got := key.URL(DefaultHost)
	expected := "https://www.pricecharting.com/game/pal-ps1/final-fantasy-vii"
	if got != expected {
		t.Fatalf("got %q, expected %q", got, expected)
	}
}
