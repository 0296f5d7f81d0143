// Package sqlident allow-lists table and column identifiers before a dbiface.Database
// implementation interpolates them into SQL. The core passes table/column strings from schema
// DependencySource values straight through without escaping (spec §6, §9 "SQL safety" —
// identifiers are never escaped by the core; an adapter should validate them). The pattern mirrors
// schema.isName's GraphQL-identifier regex, applied to the separate universe of SQL identifiers.
package sqlident

import "regexp"

var identRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Valid reports whether name is safe to interpolate directly into a SQL statement as a table or
// column identifier: it must start with a letter or underscore and contain only letters, digits,
// and underscores. Quoting/escaping are deliberately not attempted — reject, don't sanitize.
func Valid(name string) bool {
	return identRegexp.MatchString(name)
}

// Check returns an error naming which of table/columns failed Valid, or nil if all are safe. A
// Database adapter should call this once per distinct identifier it is about to interpolate,
// rather than per request, since the set of identifiers a Schema can ever produce is fixed at
// schema-construction time.
func Check(table string, columns ...string) error {
	if !Valid(table) {
		return &InvalidIdentifierError{Identifier: table}
	}
	for _, c := range columns {
		if !Valid(c) {
			return &InvalidIdentifierError{Identifier: c}
		}
	}
	return nil
}

// InvalidIdentifierError names the offending identifier.
type InvalidIdentifierError struct {
	Identifier string
}

func (e *InvalidIdentifierError) Error() string {
	return "sqlident: " + e.Identifier + " is not a valid SQL identifier"
}
