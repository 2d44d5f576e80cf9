package member

import (
	"reflect"
	"sort"

	"github.com/anoideaopen/accessor/registry"
)

// Methods returns the sorted names of all methods of the type visible under
// the given filter. Overload sets contribute their name once.
func Methods(t *registry.Type, filter Filter) []string {
	seen := make(map[string]struct{})

	if filter == PublicInstance {
		ptype := reflect.PointerTo(t.GoType())
		for i := 0; i < ptype.NumMethod(); i++ {
			seen[ptype.Method(i).Name] = struct{}{}
		}
	}

	for _, name := range t.MethodNames(filter == PublicStatic) {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Properties returns the sorted names of all properties of the type visible
// under the given filter, registered ones and accessor-pair conventions
// alike.
func Properties(t *registry.Type, filter Filter) []string {
	static := filter == PublicStatic
	seen := make(map[string]struct{})

	for _, spec := range t.PropertySpecs() {
		if spec.Static == static {
			seen[spec.Name] = struct{}{}
		}
	}

	if !static {
		ptype := reflect.PointerTo(t.GoType())
		for i := 0; i < ptype.NumMethod(); i++ {
			name := ptype.Method(i).Name
			if _, _, ok := accessorPair(t.GoType(), name); ok {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
