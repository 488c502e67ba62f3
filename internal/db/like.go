// Package db holds helpers shared by the store implementations.
package db

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching term anywhere in a value.
// Wildcards inside term are escaped with a backslash.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
