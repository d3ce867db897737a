// Package schema describes Go record types for the mapper.
//
// A Catalog lists the members of a struct type in declaration order,
// flattening embedded structs so that an embedding type carries its
// ancestors' members first. A Registry names concrete record types with
// stable discriminator names and binds interfaces to the record used when
// a member is written in declared-only mode.
//
// # Struct tags
//
// Members are configured with the troupe key:
//
//	Secret   string `troupe:"-"`                      // never written or read
//	Director Human  `troupe:"declared"`               // no discriminator, declared type only
//	Boss     Human  `troupe:"declared=model.Person"`  // declared type given by name
//	ID       string `troupe:"field=id"`               // element name override
package schema
