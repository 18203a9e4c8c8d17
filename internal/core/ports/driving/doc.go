// Package driving provides interfaces for the application's entry
// points (primary/inbound ports). The CLI layer calls the core only
// through these.
package driving
