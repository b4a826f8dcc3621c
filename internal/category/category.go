// Package category holds the naming rules and colour palette for transaction
// categories.
package category

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
)

// IsValidName accepts names made of letters and whitespace only. Empty or
// whitespace-only input is rejected.
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsSkip reports whether the text is the literal "skip" keyword, which flows
// treat as "no value provided". Callers must check this before validation.
func IsSkip(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "skip")
}

type paletteEntry struct {
	name  string
	color string
}

var defaultPalette = map[model.TransactionType][]paletteEntry{
	model.TypeExpense: {
		{"Food & Dining", "#ff6b6b"},
		{"Transportation", "#4ecdc4"},
		{"Shopping", "#45b7d1"},
		{"Entertainment", "#96ceb4"},
		{"Bills & Utilities", "#feca57"},
		{"Healthcare", "#ff9ff3"},
		{"Education", "#54a0ff"},
		{"Other", "#5f27cd"},
	},
	model.TypeIncome: {
		{"Salary", "#00d2d3"},
		{"Freelance", "#ff9f43"},
		{"Investment", "#10ac84"},
		{"Gift", "#ee5a6f"},
		{"Other", "#0984e3"},
	},
}

// ColorFor returns the palette colour for a known default category, or a
// colour derived deterministically from the name otherwise.
func ColorFor(name string, typ model.TransactionType) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range defaultPalette[typ] {
		if strings.ToLower(entry.name) == normalized {
			return entry.color
		}
	}
	return hashColor(name)
}

func hashColor(name string) string {
	var hash int32
	for _, r := range name {
		hash = r + ((hash << 5) - hash)
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 3; i++ {
		b.WriteString(fmt.Sprintf("%02x", byte(hash>>(uint(i)*8))))
	}
	return b.String()
}
