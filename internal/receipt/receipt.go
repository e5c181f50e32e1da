// Package receipt форматирует чеки продаж в виде текстовой таблицы.
package receipt

import (
	"fmt"
	"strings"
)

const title = "FARMSHOP RECEIPT"

const activePlaceholder = "Transaction is still active; receipt is not yet available."

// ActivePlaceholder возвращает заглушку вместо чека незавершённой транзакции.
func ActivePlaceholder() string {
	return activePlaceholder
}

// FormatPrice форматирует сумму в центах как строку вида $X.YY.
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// Format собирает чек из заголовков колонок, строк покупок, итоговой суммы
// и имени покупателя.
func Format(headings []string, rows [][]string, total, customerName string) string {
	return build(headings, rows, total, customerName, "")
}

// FormatWithSavings собирает чек, дополненный строкой с суммой экономии.
func FormatWithSavings(headings []string, rows [][]string, total, customerName, savings string) string {
	return build(headings, rows, total, customerName, savings)
}

func build(headings []string, rows [][]string, total, customerName, savings string) string {
	columns := len(headings)
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	widths := make([]int, columns)
	for i, h := range headings {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	width := 0
	for _, w := range widths {
		width += w
	}
	width += 2 * (columns - 1)
	if width < len(title) {
		width = len(title)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("=", width))
	b.WriteByte('\n')
	b.WriteString(center(title, width))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", width))
	b.WriteByte('\n')

	b.WriteString(formatRow(headings, widths))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(formatRow(row, widths))
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')
	b.WriteString("Total: " + total)
	b.WriteByte('\n')
	if savings != "" {
		b.WriteString("***** TOTAL SAVINGS: " + savings + " *****")
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')
	b.WriteString("Thank you for your purchase, " + customerName + "!")
	b.WriteByte('\n')

	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
