// Package segmentfmt renders fp.Segment values for humans. It has no
// influence on core semantics; it is a presentation concern only.
package segmentfmt

import (
	"strconv"

	"github.com/db47h/fpexact/fp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders seg as a locale-grouped line: the exponent, the
// segment's min/max endpoints with thousands separators, and the raw
// distance between neighbouring floats. tag controls the locale used
// for digit grouping (language.English for "1,024", language.French
// for "1 024", and so on).
//
// Min and Max round-trip through float64 for display purposes only,
// the same way currency.FixedPoint.Format scales its integer base
// through float64 before handing it to number.Decimal; the core's
// exact decimal values are never mutated by this package.
func Format(seg *fp.Segment, tag language.Tag) string {
	min, _ := strconv.ParseFloat(seg.Min.Text('f', -1), 64)
	max, _ := strconv.ParseFloat(seg.Max.Text('f', -1), 64)

	p := message.NewPrinter(tag)
	return p.Sprintf("exponent %d: [%v, %v], distance %s",
		seg.UnbiasedExp,
		number.Decimal(min),
		number.Decimal(max),
		seg.Distance.Text('f', -1),
	)
}
