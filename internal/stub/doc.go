// Package stub generates PHP source files for a plugin from templates: new
// controllers, widgets, helpers and console commands, and method bodies
// appended to existing classes. Templates are embedded in the binary; a
// project may override any of them from its own stubs directory.
package stub
