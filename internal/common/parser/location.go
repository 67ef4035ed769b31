package parser

import "strings"

// Location is the parsed form of a raw location string. Nil fields mean
// the component was absent or unrecognized.
type Location struct {
	City     *string
	State    *string
	Country  *string
	Region   *string
	IsRemote bool
}

// ParseLocation splits a free-text location into city/state/country/region
// plus a remote flag. A purely-remote string ("Remote") leaves city and
// state nil; a qualified one ("New York, NY (Remote)") still parses the
// real location and keeps the flag set. The second comma token is checked
// against the recognized state set; anything else is treated as a country
// name so international postings survive. Unparseable input returns the
// zero Location.
func ParseLocation(raw string, rules *Rules) Location {
	var loc Location

	s := strings.TrimSpace(raw)
	if s == "" {
		return loc
	}

	lower := strings.ToLower(s)
	for _, marker := range rules.RemoteMarkers {
		if strings.Contains(lower, marker) {
			loc.IsRemote = true
			s = stripRemoteQualifier(s, rules.RemoteMarkers)
			break
		}
	}

	if s == "" {
		// Purely a remote marker, nothing left to parse.
		return loc
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if parts[0] != "" {
		city := parts[0]
		loc.City = &city
	}

	if len(parts) < 2 || parts[1] == "" {
		return loc
	}

	token := strings.ToUpper(parts[1])
	if region, ok := rules.StateRegions[token]; ok {
		state := token
		loc.State = &state
		if region != "" {
			r := region
			loc.Region = &r
		}
		country := rules.DefaultCountry
		if len(parts) > 2 && parts[2] != "" {
			country = parts[2]
		}
		loc.Country = &country
		return loc
	}

	// Unrecognized second token: treat it as a country name, state stays
	// null.
	country := parts[1]
	loc.Country = &country
	return loc
}

// stripRemoteQualifier removes remote markers and their parenthetical or
// separator dressing, leaving any real location text behind.
func stripRemoteQualifier(s string, markers []string) string {
	lower := strings.ToLower(s)
	for _, marker := range markers {
		for {
			idx := strings.Index(lower, marker)
			if idx < 0 {
				break
			}
			s = s[:idx] + s[idx+len(marker):]
			lower = lower[:idx] + lower[idx+len(marker):]
		}
	}
	s = strings.ReplaceAll(s, "()", "")
	s = strings.Trim(s, " \t-–—/|,")
	return strings.TrimSpace(s)
}
