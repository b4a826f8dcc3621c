package category

import (
	"strings"
	"testing"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Gasoline", true},
		{"Pet Supplies", true},
		{"Pet\tSupplies", true},
		{"Pet\nSupplies", true},
		{"Gas0line", false},
		{"Gas-Oline", false},
		{"", false},
		{"   ", false},
		{"123", false},
		{"Food!", false},
	}
	for _, tt := range tests {
		if got := IsValidName(tt.in); got != tt.want {
			t.Fatalf("IsValidName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsSkip(t *testing.T) {
	for _, s := range []string{"skip", "SKIP", "Skip", " skip "} {
		if !IsSkip(s) {
			t.Fatalf("IsSkip(%q) = false", s)
		}
	}
	for _, s := range []string{"skipping", "", "s kip"} {
		if IsSkip(s) {
			t.Fatalf("IsSkip(%q) = true", s)
		}
	}
}

func TestColorForPalette(t *testing.T) {
	if got := ColorFor("Food & Dining", model.TypeExpense); got != "#ff6b6b" {
		t.Fatalf("palette colour = %s", got)
	}
	if got := ColorFor("salary", model.TypeIncome); got != "#00d2d3" {
		t.Fatalf("case-insensitive palette lookup = %s", got)
	}
}

func TestColorForDeterministicHash(t *testing.T) {
	a := ColorFor("Gasoline", model.TypeExpense)
	b := ColorFor("Gasoline", model.TypeExpense)
	if a != b {
		t.Fatalf("hash colour not deterministic: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "#") || len(a) != 7 {
		t.Fatalf("unexpected colour format: %s", a)
	}
}
