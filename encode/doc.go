// Package encode writes ir trees as documents.
//
// XML is the default and the only format the mapper round trips without
// loss of shape. YAML and JSON are alternative views of the same tree:
// records become mappings, lists become sequences of single key mappings
// and leaves become strings.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//	err := encode.Encode(node, w, encode.EncodeWire(true)) // no indentation
//
// Output is a pure function of the tree and the options.
package encode
