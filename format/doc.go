// Package format names the textual document formats troupe reads and writes.
//
// XML is the round-trip format of the catalogue. YAML and JSON render the
// same tree for viewing, patching and converting.
package format
