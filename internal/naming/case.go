package naming

import (
	"strings"
	"unicode"
)

// Casing joins words into PascalCase, spelling the words it knows as
// initialisms in upper case. The zero value knows none.
type Casing struct {
	initialisms map[string]bool
}

func NewCasing(initialisms ...string) Casing {
	c := Casing{initialisms: make(map[string]bool, len(initialisms))}
	for _, init := range initialisms {
		c.initialisms[strings.ToUpper(init)] = true
	}
	return c
}

func (c Casing) Pascal(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for _, word := range words {
		upper := strings.ToUpper(word)
		if c.initialisms[upper] {
			result.WriteString(upper)
		} else {
			result.WriteString(capitalize(word))
		}
	}
	return result.String()
}

// PascalCase capitalizes every word and lowercases the rest of it, so
// "petId" and "PET_ID" both become "PetId".
func PascalCase(s string) string {
	return Casing{}.Pascal(s)
}

func SnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	var prev rune

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			prev = r
			continue
		}

		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
		prev = r
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
