package prices

import (
	"strings"
)

// Profile is an ordered list of css selectors that locate the price
// element on a retailer's product page.
type Profile struct {
	Name      string
	Selectors []string
}

var AmazonProfile = Profile{
	Name: "amazon",
	Selectors: []string{
		".a-price .a-offscreen",
		"#priceblock_ourprice",
		".priceToPay .a-offscreen",
		"[data-a-size='xl'] .a-offscreen",
	},
}

var WalmartProfile = Profile{
	Name: "walmart",
	Selectors: []string{
		".price--dollars",
		"[itemprop='price']",
		".price-display",
		".price-group",
	},
}

var GenericProfile = Profile{
	Name: "generic",
	Selectors: []string{
		"span.price",
		"div.price",
		".price",
		"[itemprop='price']",
		".a-price",
		".price--dollars",
	},
}

// ProfileFor picks the profile from the hostname, any label of the host
// equal to a retailer's name selects that retailer (www.amazon.com,
// smile.amazon.co.uk, walmart.ca).
func ProfileFor(hostname string) Profile {
	labels := strings.Split(strings.ToLower(hostname), ".")
	for _, label := range labels {
		switch label {
		case "amazon":
			return AmazonProfile
		case "walmart":
			return WalmartProfile
		}
	}
	return GenericProfile
}
