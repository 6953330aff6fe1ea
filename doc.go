// Package pdf implements the indirect-object graph and classic-xref
// serializer for a minimal, non-encrypted, non-compressed PDF 1.1 file:
// a Catalog, a Pages tree of depth one, Page objects, Type1 Font
// resources, and per-page content streams.
//
// Objects live in a flat, insertion-ordered arena indexed by object
// number; parent/child and resource links are object numbers, not Go
// pointers, so the Pages root <-> Page cycle never needs to be broken by
// hand at serialization time (§9, "Cyclic parent/child references").
package pdf
