// Package cli defines the Cobra command tree for the antonella CLI. Each file
// registers one command with the root. Commands resolve the project, call
// into the internal packages and format the outcome; they hold no
// scaffolding logic of their own.
package cli
