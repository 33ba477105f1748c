package locale

import (
	"strings"
)

// sentinels are raw values that mean "no name here" rather than a real name.
// They pass through untouched and are never recorded as unresolved.
var sentinels = map[string]bool{
	"":              true,
	"DNP":           true,
	"N/A":           true,
	"--":            true,
	"null":          true,
	"None":          true,
	"DID NOT PLAY":  true,
	"NOT AVAILABLE": true,
}

// IsSentinel reports whether s is a non-name placeholder value.
func IsSentinel(s string) bool {
	return sentinels[strings.TrimSpace(s)]
}

// suffixMarker describes how a generational suffix renders in Chinese.
// Jr./Sr. read as prefixes (小/老); ordinals append (三世).
type suffixMarker struct {
	marker  string
	prepend bool
}

var suffixMarkers = map[string]suffixMarker{
	"Jr.": {"小", true},
	"Jr":  {"小", true},
	"Sr.": {"老", true},
	"Sr":  {"老", true},
	"II":  {"二世", false},
	"III": {"三世", false},
	"IV":  {"四世", false},
	"V":   {"五世", false},
}

// Resolver translates English team and player display names to Chinese.
// It never fails: a name with no translation comes back unchanged.
// Safe for concurrent use; the tables are read-only after construction.
type Resolver struct {
	tables     *Tables
	unresolved *UnresolvedSet // optional diagnostics sink, may be nil
}

// NewResolver builds a resolver over the given tables. unresolved may be nil
// to disable diagnostic recording.
func NewResolver(tables *Tables, unresolved *UnresolvedSet) *Resolver {
	if tables == nil {
		tables = NewTables(nil, nil)
	}
	return &Resolver{tables: tables, unresolved: unresolved}
}

// ResolveTeam returns the Chinese name for a team display name, or the input
// unchanged when there is no mapping.
func (r *Resolver) ResolveTeam(raw string) string {
	if cn, ok := r.tables.Teams[strings.TrimSpace(raw)]; ok {
		return cn
	}
	return raw
}

// ResolvePlayer returns the best available Chinese name for a raw player
// name. Matching tiers, first hit wins:
//
//  1. exact table key
//  2. generational-suffix strip (Jr./Sr./II–V) with the suffix marker applied
//  3. punctuation-insensitive compare ("A.J. Green" vs "AJ Green")
//  4. case-insensitive substring containment, a permissive tier known to
//     mismatch players with overlapping names; kept last-resort
//
// A miss records the name in the unresolved set (sentinels excepted) and
// returns the input unchanged.
func (r *Resolver) ResolvePlayer(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" || sentinels[name] {
		return raw
	}

	if cn, ok := r.tables.Players[name]; ok {
		return cn
	}
	if cn, ok := r.resolveSuffixed(name); ok {
		return cn
	}
	if cn, ok := r.resolveCompacted(name); ok {
		return cn
	}
	if cn, ok := r.resolveContained(name); ok {
		return cn
	}

	if r.unresolved != nil {
		r.unresolved.Add(name)
	}
	return raw
}

// resolveSuffixed strips a trailing generational suffix and looks up the base
// name, re-applying the localized marker on a hit.
func (r *Resolver) resolveSuffixed(name string) (string, bool) {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return "", false
	}

	suffix, known := suffixMarkers[parts[len(parts)-1]]
	if !known {
		return "", false
	}

	base := strings.Join(parts[:len(parts)-1], " ")
	cn, ok := r.tables.Players[base]
	if !ok {
		return "", false
	}

	if suffix.prepend {
		return suffix.marker + cn, true
	}
	return cn + suffix.marker, true
}

// resolveCompacted compares names with periods and spaces removed, so
// initials match regardless of punctuation style.
func (r *Resolver) resolveCompacted(name string) (string, bool) {
	query := compactName(name)
	for _, key := range r.tables.playerKeys {
		if compactName(key) == query {
			return r.tables.Players[key], true
		}
	}
	return "", false
}

// resolveContained is the fuzzy last-resort tier: case-insensitive substring
// containment in either direction. First hit in sorted key order wins, which
// can pick the wrong player when names overlap.
func (r *Resolver) resolveContained(name string) (string, bool) {
	query := strings.ToLower(name)
	for _, key := range r.tables.playerKeys {
		lower := strings.ToLower(key)
		if strings.Contains(lower, query) || strings.Contains(query, lower) {
			return r.tables.Players[key], true
		}
	}
	return "", false
}

func compactName(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}
