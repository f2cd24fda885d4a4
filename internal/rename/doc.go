// Package rename moves a plugin from one root PHP namespace to another.
//
// The rename is a plain substring substitution over composer.json, the core
// plugin files and every file under src/. It is not PHP-aware: a token that
// is a prefix of a longer identifier is rewritten too. Such hits are
// reported as warnings on the Result so the user can review them.
package rename
