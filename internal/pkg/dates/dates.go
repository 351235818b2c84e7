package dates

import (
	"strings"
	"time"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// Canonical каноничный формат даты заявки
const Canonical = "2006-01-02"

// Порядок форматов значим: строка, подходящая под несколько шаблонов,
// трактуется первым совпавшим. Шаблоны без ведущих нулей принимают
// ввод вида 6/15/2025 - пользователи редко набивают нули руками.
var acceptedFormats = []string{
	"01/02/2006", // MM/DD/YYYY
	"01-02-2006", // MM-DD-YYYY
	"2006-01-02", // YYYY-MM-DD
	"1/2/2006",   // M/D/YYYY
	"1-2-2006",   // M-D-YYYY
	"2006-1-2",   // YYYY-M-D
}

// Normalize приводит пользовательский ввод к каноничному виду YYYY-MM-DD.
// Никакой календарной логики сверх разбора нет: дата в прошлом - валидна.
func Normalize(text string) (string, error) {
	text = strings.TrimSpace(text)

	for _, format := range acceptedFormats {
		parsed, err := time.Parse(format, text)
		if err != nil {
			continue
		}
		return parsed.Format(Canonical), nil
	}

	return "", domain.ErrInvalidDateFormat
}
