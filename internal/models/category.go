package models

import "strings"

// Category is the closed set of investment classes.
type Category string

const (
	CategoryStock      Category = "stock"
	CategoryCrypto     Category = "crypto"
	CategoryBond       Category = "bond"
	CategoryETF        Category = "etf"
	CategoryCommodity  Category = "commodity"
	CategoryRealEstate Category = "real_estate"
)

func Categories() []Category {
	return []Category{
		CategoryStock,
		CategoryCrypto,
		CategoryBond,
		CategoryETF,
		CategoryCommodity,
		CategoryRealEstate,
	}
}

func (c Category) String() string { return string(c) }

func ParseCategory(raw string) (Category, bool) {
	v := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range Categories() {
		if c == v {
			return c, true
		}
	}
	return "", false
}
