package classifier

import (
	"regexp"
	"strings"

	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/textutils"
)

const (
	counterpartSeparator = " - "
	maxFallbackLength    = 80
)

// Masked CPF/CNPJ or account numbers keep their digit grouping after the mask is removed.
var maskedDocumentPattern = regexp.MustCompile(`\d{3}\.\d{3}`)

// ExtractCounterpart picks the other party's name out of descriptions shaped like
// "PIX RECEBIDO - Joao Silva - ***.456.789-**".
//
// The first dash-separated part after the leading one that has a letter and is not a
// masked document wins; otherwise the second part; a description without separators
// falls back to its first 80 characters.
func ExtractCounterpart(description string) string {
	cleaned := textutils.NormalizeWhitespace(textutils.StripObfuscationMarks(description))

	var parts []string
	for _, part := range strings.Split(cleaned, counterpartSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	var selected string
	switch {
	case len(parts) > 1:
		selected = parts[1]
		for _, part := range parts[1:] {
			if textutils.ContainsLetter(part) && !maskedDocumentPattern.MatchString(part) {
				selected = part
				break
			}
		}
	default:
		selected = textutils.Truncate(cleaned, maxFallbackLength)
	}

	if name := textutils.CleanName(selected); textutils.ContainsLetter(name) {
		return name
	}
	return models.NotIdentified
}
