package extract

import (
	"strings"
)

// countryNames maps a curated set of country names to their ISO-3166
// two-letter code. The bare token "au" is deliberately excluded: matching
// it would false-positive on words like "auto".
var countryNames = map[string]string{
	"united states":       "US",
	"usa":                 "US",
	"u.s.a.":              "US",
	"united states of america": "US",
	"australia":           "AU",
	"canada":              "CA",
	"united kingdom":      "GB",
	"uk":                  "GB",
	"new zealand":         "NZ",
	"germany":             "DE",
	"france":              "FR",
	"spain":               "ES",
	"italy":               "IT",
	"ireland":             "IE",
	"india":               "IN",
	"singapore":           "SG",
}

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true,
	"DE": true, "FL": true, "GA": true, "HI": true, "ID": true, "IL": true, "IN": true,
	"IA": true, "KS": true, "KY": true, "LA": true, "ME": true, "MD": true, "MA": true,
	"MI": true, "MN": true, "MS": true, "MO": true, "MT": true, "NE": true, "NV": true,
	"NH": true, "NJ": true, "NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true, "WI": true,
	"WY": true, "DC": true,
}

var auStates = map[string]bool{
	"NSW": true, "VIC": true, "QLD": true, "WA": true, "SA": true, "TAS": true,
	"ACT": true, "NT": true,
}

// ParseAddress extracts address components from a multi-line block, per
// spec.md §4.3. FullAddress is the comma-joined non-empty components.
func ParseAddress(lines []string) Address {
	var addr Address
	sawAU := false
	sawUS := false

	for _, line := range lines {
		if m := AUSuburbStatePostcodeRe.FindStringSubmatch(line); m != nil && addr.City == "" {
			addr.City = strings.TrimSpace(m[1])
			addr.State = m[2]
			addr.PostalCode = m[3]
			addr.Country = "AU"
			sawAU = true
		}
		if m := USCityStateZipRe.FindStringSubmatch(line); m != nil && usStates[m[2]] {
			if addr.City == "" {
				addr.City = strings.TrimSpace(m[1])
				addr.State = m[2]
				addr.PostalCode = m[3]
			}
			if addr.Country == "" {
				addr.Country = "US"
			}
			sawUS = true
		}

		lower := strings.ToLower(line)
		for name, code := range countryNames {
			if name == "au" {
				continue
			}
			if strings.Contains(lower, name) {
				if addr.Country == "" {
					addr.Country = code
				}
				if code == "AU" {
					sawAU = true
				}
				if code == "US" {
					sawUS = true
				}
			}
		}

		if addr.Street == "" && StreetLineRe.MatchString(line) && len(strings.TrimSpace(line)) > 5 {
			addr.Street = strings.TrimSpace(line)
		}
	}

	if sawAU && sawUS && addr.State != "" && usStates[addr.State] && !auStates[addr.State] {
		addr.Country = "US"
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		addr.FullAddress = strings.Join(parts, ", ")
	}
	return addr
}
