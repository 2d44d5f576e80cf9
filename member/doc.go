// Package member provides named-lookup accessors for fields, properties,
// indexers and methods of registered types, plus invocation helpers that
// resolve overloads either by explicit parameter types or by inferring
// types from non-nil argument values.
//
// Every lookup either returns a member descriptor or fails with a typed,
// descriptive error naming the type, the member and the visibility filter;
// nothing is ever reported as a silent empty result. Descriptors are
// resolved fresh on each call and carry no cache.
//
// Example:
//
//	typ, err := registry.TypeOf(&Crate{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := member.SetValue(typ, crate, "Label", "fragile"); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := member.InvokeInferred(typ, crate, "Pack", "apples", 12)
package member
