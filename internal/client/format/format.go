// Package format turns raw record fields into the display text of the
// dashboard. Every function is pure; rendering derives its output from the
// current state snapshot on each pass.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

// printer renders numbers with Italian separators (comma decimals, dotted
// thousands groups).
var printer = message.NewPrinter(language.Italian)

// PricePlaceholder is shown for absent or unusable price values.
const PricePlaceholder = "—"

// Price formats an optional price. nil yields the placeholder.
func Price(v *float64) string {
	if v == nil {
		return PricePlaceholder
	}
	return PriceValue(*v)
}

// PriceValue formats a price that is always present: NaN yields the
// placeholder, exact zero the literal free-plan string, anything else two
// decimals with a comma separator and the trailing euro sign.
func PriceValue(v float64) string {
	if math.IsNaN(v) {
		return PricePlaceholder
	}
	if v == 0 {
		return "0 €"
	}
	return printer.Sprintf("%.2f €", v)
}

// Count renders an integer count with grouping separators, e.g. 12500
// becomes "12.500".
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// SegmentLabel maps a segment tag to its descriptive label. The mapping is
// total: any value outside the closed set yields the generic label.
func SegmentLabel(s models.Segment) string {
	switch s {
	case models.SegmentCasual:
		return `Casual · profilo "sport"`
	case models.SegmentEmerging:
		return "Emergente · primi passi nel mondo brand"
	case models.SegmentPro:
		return "Creator Pro · collaborazioni strutturate"
	case models.SegmentAgency:
		return "Top / Agenzia · gestione profili importanti"
	default:
		return "Profilo"
	}
}
