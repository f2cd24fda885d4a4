// Package doctor runs read-only health checks against a plugin project and
// reports one line per check. Nothing is repaired.
package doctor
