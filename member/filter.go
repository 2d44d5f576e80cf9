package member

// Filter selects which members of a type are eligible for a lookup.
// Go reflection only exposes exported members, so both filters are public;
// they differ in whether the member is reached through an instance receiver
// or bound at type level in the registry.
type Filter int

const (
	// PublicInstance selects exported members accessed through an instance
	// receiver. This is the default filter of the convenience accessors.
	PublicInstance Filter = iota

	// PublicStatic selects exported members registered at type level:
	// package-level variables, plain funcs and static properties.
	PublicStatic
)

// String returns the filter description used in lookup error messages.
func (f Filter) String() string {
	if f == PublicStatic {
		return "public static"
	}

	return "public instance"
}

// filterFor derives the lookup filter from the receiver of an invocation:
// a nil receiver means static, anything else means instance.
func filterFor(recv any) Filter {
	if recv == nil {
		return PublicStatic
	}

	return PublicInstance
}
