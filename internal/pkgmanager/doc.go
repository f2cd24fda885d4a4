// Package pkgmanager drives Composer, the plugin's PHP package manager, for
// module installs and autoloader regeneration.
package pkgmanager
