package validate

// AccountSuffix derives the match key for a bank account: strip everything
// that is not a digit and keep the final 4 digits. Slip sources rarely
// transmit full account numbers intact, so only the suffix is comparable.
// Inputs with fewer than 4 digits are returned whole.
func AccountSuffix(s string) string {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}
