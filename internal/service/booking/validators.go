package booking

const maxProfileIDLength = 64

// id профиля устройства приходит в пути запроса и становится ключом хранилища
func isValidProfileID(profileID string) bool {
	if profileID == "" || len(profileID) > maxProfileIDLength {
		return false
	}

	for _, char := range profileID {
		switch {
		case char >= 'a' && char <= 'z',
			char >= 'A' && char <= 'Z',
			char >= '0' && char <= '9',
			char == '-', char == '_':
		default:
			return false
		}
	}
	return true
}
