// Package platform provides the filesystem primitives shared by the config
// mutator and the rename engine: staged whole-file replacement that never
// leaves a half-written file behind, with the original permissions kept.
package platform
