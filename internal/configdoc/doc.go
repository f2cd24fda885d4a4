// Package configdoc edits a plugin's src/Config.php as plain text. It finds the
// declaration of a named array with a whitespace-insensitive anchor and
// splices a new element into it, leaving every other line untouched, so the
// file stays valid PHP without ever being parsed into a syntax tree.
package configdoc
