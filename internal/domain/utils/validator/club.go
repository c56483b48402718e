package validator

import (
	"unicode/utf8"

	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
)

func ClubName(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 255
}

func ClubDescription(description string) bool {
	return utf8.RuneCountInString(description) >= 1
}

func Campus(campus entity.Campus) bool {
	return campus.Valid()
}
