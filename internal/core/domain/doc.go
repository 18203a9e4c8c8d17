// Package domain contains the core entities and business rules for askdoc.
// It has no dependencies on adapters or external libraries.
package domain
