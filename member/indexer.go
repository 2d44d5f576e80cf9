package member

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/registry"
)

// FindIndexer searches the type for its indexer: the first property whose
// getter exposes index parameters. The member name is ignored. Registered
// properties are scanned in registration order, then the accessor-pair
// convention over the method set. Fails with ErrIndexerNotFound when the
// type defines no indexed property.
func FindIndexer(t *registry.Type, filter Filter) (*Property, error) {
	static := filter == PublicStatic
	for _, spec := range t.PropertySpecs() {
		if spec.Static != static {
			continue
		}

		p := &Property{owner: t, name: spec.Name, static: static, getter: spec.Getter, setter: spec.Setter}
		if len(p.IndexTypes()) > 0 {
			return p, nil
		}
	}

	if !static {
		ptype := reflect.PointerTo(t.GoType())
		for i := 0; i < ptype.NumMethod(); i++ {
			name := ptype.Method(i).Name
			getter, setter, ok := accessorPair(t.GoType(), name)
			if !ok {
				continue
			}

			p := &Property{owner: t, name: name, getter: getter, setter: setter}
			if len(p.IndexTypes()) > 0 {
				return p, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: type '%s' has no %s indexed property", ErrIndexerNotFound, t.Name(), filter)
}
