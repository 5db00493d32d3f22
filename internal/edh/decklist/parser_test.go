package decklist

import (
	"reflect"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean name unchanged",
			input:    "Sol Ring",
			expected: "Sol Ring",
		},
		{
			name:     "arena set suffix",
			input:    "Lightning Bolt (M21) 123",
			expected: "Lightning Bolt",
		},
		{
			name:     "set suffix without collector number",
			input:    "Counterspell (CMR)",
			expected: "Counterspell",
		},
		{
			name:     "bracketed set code",
			input:    "Arcane Signet [BRO] #270",
			expected: "Arcane Signet",
		},
		{
			name:     "hash collector marker",
			input:    "Swamp #261",
			expected: "Swamp",
		},
		{
			name:     "surrounding whitespace",
			input:    "  Llanowar Elves  ",
			expected: "Llanowar Elves",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}

			// Normalizing an already normalized name is a no-op.
			if again := NormalizeName(got); again != got {
				t.Errorf("NormalizeName not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Entry
	}{
		{
			name:     "bare name defaults to one",
			input:    "Sol Ring",
			expected: Entry{Quantity: 1, Name: "Sol Ring"},
		},
		{
			name:     "quantity with x",
			input:    "4x Lightning Bolt",
			expected: Entry{Quantity: 4, Name: "Lightning Bolt"},
		},
		{
			name:     "quantity without x",
			input:    "97 Island",
			expected: Entry{Quantity: 97, Name: "Island"},
		},
		{
			name:     "uppercase X",
			input:    "2X Counterspell",
			expected: Entry{Quantity: 2, Name: "Counterspell"},
		},
		{
			name:     "digits inside name preserved",
			input:    "1x Borrowing 100,000 Arrows",
			expected: Entry{Quantity: 1, Name: "Borrowing 100,000 Arrows"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEntry(tt.input)
			if got != tt.expected {
				t.Errorf("ParseEntry(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple lines",
			input:    "1 Sol Ring\n1 Ponder\n",
			expected: []string{"1 Sol Ring", "1 Ponder"},
		},
		{
			name:     "carriage returns normalized",
			input:    "1 Sol Ring\r\n1 Ponder",
			expected: []string{"1 Sol Ring", "1 Ponder"},
		},
		{
			name:     "semicolon separated",
			input:    "1 Sol Ring; 1 Ponder; 2 Island",
			expected: []string{"1 Sol Ring", "1 Ponder", "2 Island"},
		},
		{
			name:     "continuous text split",
			input:    "1 Sol Ring 1 Ponder 2 Island",
			expected: []string{"1 Sol Ring", "1 Ponder", "2 Island"},
		},
		{
			name:     "single entry kept intact",
			input:    "1 Swords to Plowshares",
			expected: []string{"1 Swords to Plowshares"},
		},
		{
			name:     "bare name without quantity",
			input:    "Commander's Sphere",
			expected: []string{"Commander's Sphere"},
		},
		{
			name:     "blank lines skipped",
			input:    "\n\n1 Sol Ring\n\n",
			expected: []string{"1 Sol Ring"},
		},
		{
			name:     "empty block",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlock(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseBlock(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitContinuous(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "three entries",
			input:    "1 Sol Ring 1 Ponder 2 Island",
			expected: []string{"1 Sol Ring", "1 Ponder", "2 Island"},
		},
		{
			name:     "multi-word names",
			input:    "1 Demonic Consultation 1 Thassa's Oracle",
			expected: []string{"1 Demonic Consultation", "1 Thassa's Oracle"},
		},
		{
			name:     "trailing punctuation stripped",
			input:    "1 Sol Ring, 1 Ponder.",
			expected: []string{"1 Sol Ring", "1 Ponder"},
		},
		{
			name:     "single match returned intact",
			input:    "1 Sol Ring",
			expected: []string{"1 Sol Ring"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitContinuous(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitContinuous(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildEntries(t *testing.T) {
	lines := []string{
		"1x Sol Ring (CMR) 464",
		"",
		"97x Island",
		"Thassa's Oracle",
	}

	got := BuildEntries(lines)
	expected := []Entry{
		{Quantity: 1, Name: "Sol Ring"},
		{Quantity: 97, Name: "Island"},
		{Quantity: 1, Name: "Thassa's Oracle"},
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("BuildEntries() = %+v, want %+v", got, expected)
	}
}
