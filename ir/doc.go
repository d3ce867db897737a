// Package ir provides the tree representation of troupe documents.
//
// A document is a tree of named nodes. Each node is one of
//
//   - TextType: a leaf holding the text of a primitive, enumerant or string
//   - ListType: an ordered sequence of same-named items (a collection)
//   - RecordType: a set of uniquely named fields (a record)
//   - ElementType: child elements as read from markup, where a list and a
//     record cannot be told apart until the reader knows the target type
//
// Records may carry a reserved first field named TypeField holding the
// discriminator of the record's concrete type.
//
// Nodes know their parent so error messages can report a Path. Trees are
// built fresh on every write and are not shared between documents.
package ir
