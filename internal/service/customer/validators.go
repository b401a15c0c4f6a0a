package customer

import "strings"

func isValidLogin(login string) bool {
	return len(login) >= 3
}

func isValidPassword(password string) bool {
	return len(password) >= 6
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPhone(phone string) bool {
	if len(phone) < 5 {
		return false
	}

	for i, r := range phone {
		if i == 0 && r == '+' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
