package php

import "strings"

// FormatVersion extracts the version number from the output of `php -v` and
// returns it prefixed with "v". Any distribution suffix after the first dash
// is dropped:
//
//	PHP 7.2.17-0ubuntu0.18.04.1 (cli) (built: Apr 18 2019 14:12:38) ( NTS )
//
// becomes "v7.2.17". It returns false when the text has no "PHP" marker or
// nothing follows it.
func FormatVersion(raw string) (string, bool) {
	_, rest, found := strings.Cut(raw, "PHP")
	if !found {
		return "", false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}

	number, _, _ := strings.Cut(fields[0], "-")
	return "v" + number, true
}
