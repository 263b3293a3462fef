package datetime_test

import (
	"testing"

	"chrono/pkg/datetime"
)

// FuzzParsePeriod checks that anything ParsePeriod accepts renders to a form
// that parses back to the same period.
func FuzzParsePeriod(f *testing.F) {
	for _, seed := range []string{"P0D", "P1Y2M3D", "-P1W", "p-3m", "P1Y-2M", "+P12D", "P", "PT1H"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		p, err := datetime.ParsePeriod(text)
		if err != nil {
			return
		}
		again, err := datetime.ParsePeriod(p.String())
		if err != nil {
			t.Fatalf("ParsePeriod(%q) = %s, which does not parse: %v", text, p, err)
		}
		if !again.IsEqualTo(p) {
			t.Fatalf("round trip of %q: got %s, want %s", text, again, p)
		}
	})
}
