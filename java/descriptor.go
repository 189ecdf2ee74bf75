package java

import (
	"fmt"
	"strings"
)

// TypeKind classifies a JVM type descriptor.
type TypeKind int

const (
	KindUnknown TypeKind = iota
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid
	KindObject
	KindArray
)

// Type is a parsed JVM type descriptor.
type Type struct {
	Kind TypeKind
	// ClassName is the internal class name ("java/lang/String") when Kind is
	// KindObject.
	ClassName string
	// Elem is the element type when Kind is KindArray.
	Elem *Type
}

var primitiveKinds = map[byte]TypeKind{
	'Z': KindBoolean,
	'B': KindByte,
	'C': KindChar,
	'S': KindShort,
	'I': KindInt,
	'J': KindLong,
	'F': KindFloat,
	'D': KindDouble,
	'V': KindVoid,
}

// ParseDescriptor parses a single JVM type descriptor such as "I",
// "Ljava/lang/String;" or "[[J".
func ParseDescriptor(desc string) (Type, error) {
	t, rest, err := parseOne(desc)
	if err != nil {
		return Type{Kind: KindUnknown}, err
	}
	if rest != "" {
		return Type{Kind: KindUnknown}, fmt.Errorf("trailing characters in descriptor %q", desc)
	}
	return t, nil
}

func parseOne(desc string) (Type, string, error) {
	if desc == "" {
		return Type{}, "", fmt.Errorf("empty type descriptor")
	}
	switch c := desc[0]; c {
	case 'L':
		end := strings.IndexByte(desc, ';')
		if end < 0 {
			return Type{}, "", fmt.Errorf("unterminated object descriptor %q", desc)
		}
		name := desc[1:end]
		if name == "" {
			return Type{}, "", fmt.Errorf("empty class name in descriptor %q", desc)
		}
		return Type{Kind: KindObject, ClassName: name}, desc[end+1:], nil
	case '[':
		elem, rest, err := parseOne(desc[1:])
		if err != nil {
			return Type{}, "", err
		}
		return Type{Kind: KindArray, Elem: &elem}, rest, nil
	default:
		kind, ok := primitiveKinds[c]
		if !ok {
			return Type{}, "", fmt.Errorf("invalid type descriptor %q", desc)
		}
		return Type{Kind: kind}, desc[1:], nil
	}
}

// String renders the type in Java source notation.
func (t Type) String() string {
	switch t.Kind {
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindVoid:
		return "void"
	case KindObject:
		return strings.ReplaceAll(t.ClassName, "/", ".")
	case KindArray:
		if t.Elem == nil {
			return "?[]"
		}
		return t.Elem.String() + "[]"
	default:
		return "?"
	}
}
