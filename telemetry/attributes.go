package telemetry

import "go.opentelemetry.io/otel/attribute"

type MemberKindNum int

func (k MemberKindNum) String() string {
	switch k {
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	case KindIndexer:
		return "indexer"
	case KindMethod:
		return "method"
	case KindUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	KindUnknown MemberKindNum = iota
	KindField
	KindProperty
	KindIndexer
	KindMethod
)

func MemberKind(k MemberKindNum) attribute.KeyValue {
	return attribute.String("member_kind", k.String())
}

func TypeName(name string) attribute.KeyValue {
	return attribute.String("type_name", name)
}

func MemberName(name string) attribute.KeyValue {
	return attribute.String("member_name", name)
}
