package prices

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// ParsePrice strips every character that is not a digit or a dot from the
// text and parses what remains as a decimal number.
func ParsePrice(text string) (float64, error) {
	cleaned := nonPriceChars.ReplaceAllString(text, "")
	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0, fmt.Errorf("no digits in %q", text)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, err
	}
	price, _ := value.Float64()
	if math.IsInf(price, 0) {
		return 0, fmt.Errorf("%q is out of range", cleaned)
	}
	return price, nil
}

// ExtractPrice tries the selectors of the profile in order and returns the
// price of the first one whose first matching element parses.
func ExtractPrice(doc *goquery.Document, profile Profile) (float64, error) {
	for _, selector := range profile.Selectors {
		match := doc.Find(selector).First()
		if match.Length() == 0 {
			continue
		}
		price, err := ParsePrice(match.Text())
		if err != nil {
			continue
		}
		return price, nil
	}
	return 0, fmt.Errorf("%w: profile %s", ErrPriceNotFound, profile.Name)
}
