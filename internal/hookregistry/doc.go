// Package hookregistry loads the structured view of a plugin's Config.php:
// the entries of each hook array, decoded from the file's array literals and
// validated against an embedded JSON Schema. The project's PHP is never
// executed. It also hosts the duplicate guard that generators consult
// before registering a new entry.
package hookregistry
