package nflapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Coercion helpers shared by the per-operation validators. Query fields
// are any-typed so callers can pass either a typed enum constant or its
// raw value; every helper unwraps first and validates second. All
// failures are *Error of kind ErrInvalidArgument naming the field.

// unwrapEnum extracts the raw value from a typed enum constant and
// passes every other value through untouched.
func unwrapEnum(v any) any {
	switch e := v.(type) {
	case League:
		return int(e)
	case StatisticsGroup:
		return string(e)
	case Conference:
		return string(e)
	case Division:
		return string(e)
	}
	return v
}

// asInt accepts an int or a string holding one.
func asInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, invalidArg("%s must be an integer", field)
		}
		return i, nil
	}
	return 0, invalidArg("%s must be an integer", field)
}

// asSeason accepts any value whose string form is a 4-character year.
func asSeason(v any) (int, error) {
	s := fmt.Sprint(v)
	if len(s) != 4 {
		return 0, invalidArg("season must be a valid year")
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidArg("season must be a valid year")
	}
	return year, nil
}

// asLeague accepts a League constant, an int, or a numeric string, and
// checks membership in {1, 2}. The field name varies because the leagues
// endpoint exposes the same value as "id".
func asLeague(field string, v any) (int, error) {
	n, err := asInt(field, unwrapEnum(v))
	if err != nil {
		return 0, err
	}
	if n != 1 && n != 2 {
		return 0, invalidArg("%s must be a valid league: 1 for NFL, 2 for NCAA", field)
	}
	return n, nil
}

// asBool accepts a native bool or the literal strings "true"/"false".
func asBool(field string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if b == "true" {
			return true, nil
		}
		if b == "false" {
			return false, nil
		}
	}
	return false, invalidArg("%s must be a boolean value", field)
}

// asDate accepts a string already in YYYY-MM-DD form (strict parse) or a
// time.Time, which is reformatted.
func asDate(field string, v any) (string, error) {
	switch d := v.(type) {
	case string:
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return "", invalidArg("%s must be a valid date in YYYY-MM-DD format", field)
		}
		return d, nil
	case time.Time:
		return d.Format("2006-01-02"), nil
	}
	return "", invalidArg("%s must be a valid date in YYYY-MM-DD format", field)
}

// asEnum unwraps and validates membership in a closed value set.
func asEnum(field string, v any, allowed []string) (string, error) {
	s, ok := unwrapEnum(v).(string)
	if ok {
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
	}
	return "", invalidArg("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// asSearch enforces the minimum search-term length shared by every
// search-capable endpoint.
func asSearch(v string) (string, error) {
	if len(v) < 3 {
		return "", invalidArg("search must be at least 3 characters")
	}
	return v, nil
}

// asH2H checks the two-dash-separated-team-IDs shape, e.g. "1-2".
func asH2H(v string) (string, error) {
	parts := strings.Split(v, "-")
	if len(parts) != 2 {
		return "", invalidArg("h2h must be two team IDs separated by a dash (e.g. 1-2)")
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return "", invalidArg("h2h must be two team IDs separated by a dash (e.g. 1-2)")
		}
	}
	return v, nil
}
