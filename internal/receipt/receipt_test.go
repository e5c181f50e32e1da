package receipt

import (
	"strings"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		cents int
		want  string
	}{
		{name: "zero", cents: 0, want: "$0.00"},
		{name: "under a dollar", cents: 50, want: "$0.50"},
		{name: "whole dollars", cents: 400, want: "$4.00"},
		{name: "dollars and cents", cents: 2850, want: "$28.50"},
		{name: "single cent", cents: 1, want: "$0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.cents); got != tt.want {
				t.Fatalf("FormatPrice(%d) = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestFormatLayout(t *testing.T) {
	text := Format(
		[]string{"Item", "Price"},
		[][]string{
			{"egg", "$0.50"},
			{"milk", "$4.40"},
		},
		"$4.90",
		"Alice",
	)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 8 {
		t.Fatalf("receipt is too short:\n%s", text)
	}

	if !strings.HasPrefix(lines[0], "=") || !strings.HasPrefix(lines[2], "=") {
		t.Fatalf("receipt must open with a banner:\n%s", text)
	}
	if strings.TrimSpace(lines[1]) != "FARMSHOP RECEIPT" {
		t.Fatalf("banner must carry the title, got %q", lines[1])
	}

	// Все линии-разделители одной ширины с баннером.
	width := len(lines[0])
	for _, line := range lines {
		if strings.HasPrefix(line, "-") && len(line) != width {
			t.Fatalf("separator width %d differs from banner width %d:\n%s", len(line), width, text)
		}
	}

	if !strings.Contains(text, "Total: $4.90") {
		t.Fatalf("receipt must contain the total:\n%s", text)
	}
	if !strings.Contains(text, "Thank you for your purchase, Alice!") {
		t.Fatalf("receipt must thank the customer by name:\n%s", text)
	}
	if strings.Contains(text, "SAVINGS") {
		t.Fatalf("plain receipt must not mention savings:\n%s", text)
	}
}

func TestFormatAlignsColumns(t *testing.T) {
	text := Format(
		[]string{"Item", "Price"},
		[][]string{
			{"egg", "$0.50"},
			{"wool", "$28.50"},
		},
		"$29.00",
		"Alice",
	)

	var header, eggRow string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Item") {
			header = line
		}
		if strings.HasPrefix(line, "egg") {
			eggRow = line
		}
	}
	if header == "" || eggRow == "" {
		t.Fatalf("expected header and egg row in receipt:\n%s", text)
	}

	// Колонка цены начинается с одной позиции во всех строках.
	if strings.Index(header, "Price") != strings.Index(eggRow, "$0.50") {
		t.Fatalf("price column is not aligned:\nheader: %q\nrow:    %q", header, eggRow)
	}
}

func TestFormatWithSavings(t *testing.T) {
	text := FormatWithSavings(
		[]string{"Item", "Qty", "Price (ea.)", "Subtotal"},
		[][]string{
			{"egg", "3", "$0.50", "$1.35"},
		},
		"$1.35",
		"Alice",
		"$0.15",
	)

	if !strings.Contains(text, "***** TOTAL SAVINGS: $0.15 *****") {
		t.Fatalf("receipt must carry the savings banner:\n%s", text)
	}
}

func TestActivePlaceholder(t *testing.T) {
	text := ActivePlaceholder()
	if text != "Transaction is still active; receipt is not yet available." {
		t.Fatalf("unexpected placeholder: %q", text)
	}
}
