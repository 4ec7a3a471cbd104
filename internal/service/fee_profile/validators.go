package fee_profile

const maxProfileNameLength = 64

// isValidProfileName допускает строчные латинские буквы, цифры, '-' и '_'.
func isValidProfileName(name string) bool {
	if name == "" || len(name) > maxProfileNameLength {
		return false
	}

	for _, char := range name {
		switch {
		case char >= 'a' && char <= 'z',
			char >= '0' && char <= '9',
			char == '-', char == '_':
		default:
			return false
		}
	}
	return true
}
