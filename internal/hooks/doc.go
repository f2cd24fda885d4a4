// Package hooks defines the entries an Antonella plugin registers in its
// src/Config.php: action and filter hooks, shortcodes, widgets and custom post
// types. Each entry knows its duplicate-detection key and how to render itself
// as a PHP array element.
package hooks
