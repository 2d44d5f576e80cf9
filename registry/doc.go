// Package registry models the set of types visible to the accessor as an
// explicit, passed-in snapshot instead of ambient process state. A Module is
// a named collection of registered types; a Registry is an ordered list of
// modules and represents the whole search space of a type-by-name lookup.
//
// Go's reflection cannot enumerate package-level declarations, has no
// properties and no method overloading, so a registered Type carries the
// member metadata reflection alone cannot express: pointers to package-level
// variables (static fields), func values (static methods, several per name),
// getter/setter pairs (properties) and extra receiver-first func values
// (instance method overloads). Everything reflection can express — struct
// fields and the method set of the Go type — is discovered fresh on every
// lookup by the member package and never cached here.
//
// Example:
//
//	mod := registry.NewModule("warehouse")
//	typ, err := mod.Register(&Crate{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = typ.RegisterVar("DefaultCapacity", &defaultCapacity)
//
//	reg := registry.New(mod)
//	typ, err = reg.Type("Crate")
package registry
