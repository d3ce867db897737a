// Package parse reads troupe documents into ir trees.
//
// # Usage
//
//	node, err := parse.Parse(data)                     // XML
//	node, err := parse.Parse(data, parse.ParseYAML())  // YAML form
//
// Any syntax failure is reported wrapping ErrMalformedDocument.
//
// # Related Packages
//
//   - github.com/signadot/troupe/ir - tree representation
//   - github.com/signadot/troupe/encode - the inverse direction
package parse
