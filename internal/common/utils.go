// Package common holds small pure helpers shared by the catalog and the API
// layer: currency formatting, slugs, truncation, grouping, and shuffling.
package common

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/rioguia/rioguia-api/internal/catalog"
)

// FormatBRL renders an amount in reais using Brazilian separators, e.g.
// 1234.5 → "R$ 1.234,50". Zero means free entry and renders as "Gratuito".
func FormatBRL(amount float64) string {
	if amount == 0 {
		return "Gratuito"
	}

	cents := int64(math.Round(math.Abs(amount) * 100))
	intPart := strconv.FormatInt(cents/100, 10)

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%02d", sign, strings.Join(groups, "."), cents%100)
}

// diacritics maps the accented characters that occur in Brazilian Portuguese
// names to their ASCII equivalents.
var diacritics = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
	"Á", "a", "À", "a", "Â", "a", "Ã", "a",
	"É", "e", "Ê", "e",
	"Í", "i",
	"Ó", "o", "Ô", "o", "Õ", "o",
	"Ú", "u", "Ü", "u",
	"Ç", "c",
)

// Slugify lowercases s, strips Portuguese diacritics, and collapses every
// run of non-alphanumeric characters into a single hyphen. This is the id
// convention the dataset follows ("Pão de Açúcar" → "pao-de-acucar").
func Slugify(s string) string {
	s = strings.ToLower(diacritics.Replace(s))

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Truncate shortens s to at most max runes, replacing the tail with an
// ellipsis when it cuts. A non-positive max returns the empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}

// GroupByCategory buckets attractions by category, preserving catalog order
// within each bucket.
func GroupByCategory(list []catalog.Attraction) map[catalog.Category][]catalog.Attraction {
	out := make(map[catalog.Category][]catalog.Attraction)
	for _, a := range list {
		out[a.Category] = append(out[a.Category], a)
	}
	return out
}

// Shuffle returns a shuffled copy of list; the input is left untouched.
func Shuffle(list []catalog.Attraction, rng *rand.Rand) []catalog.Attraction {
	out := make([]catalog.Attraction, len(list))
	copy(out, list)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
