// Package entity defines the parsed HATCH entity model consumed by the
// fill pipeline: boundary loops built from curve primitives, pattern
// descriptors, the JSON transfer format, and validation over all of it.
// Entities are produced by an external CAD-document parser and are never
// mutated by this module.
package entity
