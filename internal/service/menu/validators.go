package menu

import "strings"

func isValidItemID(itemID string) bool {
	return strings.TrimSpace(itemID) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPrice(price float64) bool {
	return price > 0
}
