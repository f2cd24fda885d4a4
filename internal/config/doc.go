// Package config resolves per-project settings for a plugin: where
// Config.php, the source tree and composer.json live, which composer binary
// to run and the namespace prefix for renames. Values come from, lowest to
// highest precedence, built-in defaults, antonella.yaml in the project root,
// the project's .env file and ANTONELLA_* environment variables.
package config
