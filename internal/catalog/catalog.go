// Package catalog описывает каталог товаров лавки: типы товаров и градации качества.
package catalog

import "fmt"

// Code идентифицирует тип товара в каталоге.
type Code int

// Типы товаров в каноническом порядке каталога.
const (
	Egg Code = iota
	Milk
	Jam
	Wool
)

// Codes возвращает все типы товаров в каноническом порядке каталога.
func Codes() []Code {
	return []Code{Egg, Milk, Jam, Wool}
}

// DisplayName возвращает отображаемое название типа товара.
func (c Code) DisplayName() string {
	switch c {
	case Egg:
		return "egg"
	case Milk:
		return "milk"
	case Jam:
		return "jam"
	case Wool:
		return "wool"
	}
	return "unknown"
}

// BasePrice возвращает базовую цену товара в центах.
func (c Code) BasePrice() int {
	switch c {
	case Egg:
		return 50
	case Milk:
		return 440
	case Jam:
		return 670
	case Wool:
		return 2850
	}
	return 0
}

func (c Code) String() string {
	return c.DisplayName()
}

// ParseCode находит тип товара по его отображаемому названию.
func ParseCode(s string) (Code, error) {
	for _, c := range Codes() {
		if c.DisplayName() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown product code: %q", s)
}

// Quality задаёт градацию качества товара, от низшей к высшей.
type Quality int

// Градации качества. Порядок значим: чем больше значение, тем выше качество.
const (
	Regular Quality = iota
	Silver
	Gold
	Iridium
)

func (q Quality) String() string {
	switch q {
	case Regular:
		return "regular"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	case Iridium:
		return "iridium"
	}
	return "unknown"
}

// ParseQuality находит градацию качества по её названию.
func ParseQuality(s string) (Quality, error) {
	for _, q := range []Quality{Regular, Silver, Gold, Iridium} {
		if q.String() == s {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality: %q", s)
}
