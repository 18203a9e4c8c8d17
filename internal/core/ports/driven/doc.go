// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports). The core services depend only on these
// interfaces and never construct their own network clients.
package driven
