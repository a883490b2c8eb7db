package pricecharting

import (
	"fmt"
	"strings"

	"pricetracker/lib/htmlutil"
	"pricetracker/lib/inventory"
	"pricetracker/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// priceElementID maps a condition code onto the element id that carries
// that tier's price on a game page. The switch is exhaustive over the known
// codes; anything else reports false.
func priceElementID(c inventory.Condition) (string, bool) {
	switch c {
	case inventory.ConditionComplete:
		return "complete_price", true
	case inventory.ConditionLoose:
		return "used_price", true
	case inventory.ConditionNew:
		return "new_price", true
	case inventory.ConditionGraded:
		return "graded_price", true
	case inventory.ConditionBoxOnly:
		return "box_only_price", true
	case inventory.ConditionManualOnly:
		return "manual_only_price", true
	}
	return "", false
}

// KnownCondition reports whether a condition code maps to a price field on
// a game page. Rows with unknown codes are not worth a network round trip;
// there is no field to read once the page arrives.
func KnownCondition(c inventory.Condition) bool {
	_, ok := priceElementID(c)
	return ok
}

// Price is the outcome of one extraction: a 2dp USD amount when Status is
// StatusOK, zero otherwise.
type Price struct {
	Amount decimal.Decimal
	Status inventory.PriceStatus
}

// ExtractPrice pulls the price for the given condition out of a fetched
// game page. Absent elements and unparsable text are expected conditions
// (delisted game, tier not sold for this title, layout drift) and map to
// StatusMissingPrice rather than an error.
func ExtractPrice(doc *goquery.Document, cond inventory.Condition) Price {
	id, ok := priceElementID(cond)
	if !ok {
		return Price{Status: inventory.StatusUnknownCondition}
	}

	sel := doc.Find("#" + id).Find(".price.js-price")
	if len(sel.Nodes) == 0 {
		return Price{Status: inventory.StatusMissingPrice}
	}

	amount, err := parsePriceText(htmlutil.GetText(sel.Nodes[0]))
	if err != nil {
		return Price{Status: inventory.StatusMissingPrice}
	}

	return Price{Amount: amount.Round(2), Status: inventory.StatusOK}
}

// parsePriceText turns the wrapped text of a price cell ("\n\t$12.34\n")
// into a decimal amount. Thousands separators are stripped along with the
// currency symbol; four-figure titles render as "$1,019.99".
func parsePriceText(text string) (decimal.Decimal, error) {
	text = textutil.CollapseLines(htmlutil.RemoveNonPrintable(text))
	text = strings.ReplaceAll(text, "$", "")
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return decimal.Zero, fmt.Errorf("empty price text")
	}
	return decimal.NewFromString(text)
}
