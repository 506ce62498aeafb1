package astro

import "testing"

func TestAltitudeDescribe(t *testing.T) {
	cases := []struct {
		alt  Altitude
		want string
	}{
		{Single{Value: 35786}, "35786 km"},
		{Single{Value: 450.5}, "450.5 km"},
		{Range{Min: 100, Max: 450}, "100-450 km"},
		{Range{Min: 2000, Max: 36000}, "2000-36000 km"},
		// Reversed bands are not sorted: output follows (min, max) as given.
		{Range{Min: 450, Max: 100}, "450-100 km"},
	}
	for _, c := range cases {
		if got := c.alt.Describe(); got != c.want {
			t.Errorf("Describe(%#v) = %q, want %q", c.alt, got, c.want)
		}
	}
}
