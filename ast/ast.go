// Package ast defines the language-neutral AST the translator produces.
// The set of node kinds is closed; callers type-switch on concrete *T
// pointers rather than extend the sum. This mirrors, and generalizes, the
// four-kind IR the teacher library used for its own (unrelated) code
// generator: github.com/reoring/goskema's internal/ir package modeled a
// Schema interface with a Kind() method and one concrete struct per kind —
// the same shape, widened here to the full closed set the translator needs.
package ast

// Kind identifies which of the closed set of AST node shapes a Node is.
type Kind int

const (
	KindLiteral Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindObject
	KindNever
	KindAny
	KindUnknown
	KindCustomType
	KindArray
	KindTuple
	KindUnion
	KindIntersection
	KindEnum
	KindInterface
	KindTypeReference
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "LITERAL"
	case KindString:
		return "STRING"
	case KindNumber:
		return "NUMBER"
	case KindBoolean:
		return "BOOLEAN"
	case KindNull:
		return "NULL"
	case KindObject:
		return "OBJECT"
	case KindNever:
		return "NEVER"
	case KindAny:
		return "ANY"
	case KindUnknown:
		return "UNKNOWN"
	case KindCustomType:
		return "CUSTOM_TYPE"
	case KindArray:
		return "ARRAY"
	case KindTuple:
		return "TUPLE"
	case KindUnion:
		return "UNION"
	case KindIntersection:
		return "INTERSECTION"
	case KindEnum:
		return "ENUM"
	case KindInterface:
		return "INTERFACE"
	case KindTypeReference:
		return "TYPE_REFERENCE"
	default:
		return "UNKNOWN_KIND"
	}
}

// Node is the common interface every AST node implements. The sum is
// sealed: isNode is unexported, so only types embedding Base (declared in
// this package) satisfy Node.
type Node interface {
	Kind() Kind
	isNode()
}

// Base carries the attributes every AST node can optionally have, per the
// data model: the property name it appears under in its parent, its
// eligibility to become a top-level named declaration, and a doc comment.
// It is embedded, never used standalone.
type Base struct {
	KeyName        *string
	StandaloneName *string
	Comment        string
}

func (Base) isNode() {}

// HasKeyName reports whether KeyName is set, and returns its value.
func (b Base) HasKeyName() (string, bool) {
	if b.KeyName == nil {
		return "", false
	}
	return *b.KeyName, true
}

// HasStandaloneName reports whether StandaloneName is set, and returns its
// value.
func (b Base) HasStandaloneName() (string, bool) {
	if b.StandaloneName == nil {
		return "", false
	}
	return *b.StandaloneName, true
}

// SetKeyName sets KeyName if it isn't already set. A node reached from more
// than one parent keeps the first key name it was given.
func (b *Base) SetKeyName(name string) {
	if b.KeyName != nil {
		return
	}
	b.KeyName = &name
}

// GetComment returns the node's doc comment, or "" if none was set.
func (b Base) GetComment() string { return b.Comment }

// AppendComment adds text to Comment, joining on a newline if Comment is
// already set rather than discarding it.
func (b *Base) AppendComment(text string) {
	if b.Comment == "" {
		b.Comment = text
		return
	}
	b.Comment = b.Comment + "\n" + text
}

// Literal is a primitive JSON value (string, number, boolean, null) or a
// whole JSON fragment, carried verbatim.
type Literal struct {
	Base
	Value any
}

func (*Literal) Kind() Kind { return KindLiteral }

// Primitive is one of the eight payload-less kinds: STRING, NUMBER,
// BOOLEAN, NULL, OBJECT, NEVER, ANY, or UNKNOWN.
type Primitive struct {
	Base
	K Kind
}

func (p *Primitive) Kind() Kind { return p.K }

// NewPrimitive builds a Primitive node of the given kind. k must be one of
// the eight payload-less kinds; passing any other Kind is a programmer
// error.
func NewPrimitive(k Kind) *Primitive { return &Primitive{K: k} }

// CustomType carries opaque target-language type text, verbatim from the
// schema's tsType extension.
type CustomType struct {
	Base
	Text string
}

func (*CustomType) Kind() Kind { return KindCustomType }

// Array is a homogeneous array of Element.
type Array struct {
	Base
	Element Node
}

func (*Array) Kind() Kind { return KindArray }

// Tuple is an ordered list of element ASTs, with an optional spread
// (additionalItems) element and optional min/max counts.
type Tuple struct {
	Base
	Elements []Node
	Spread   Node // nil when no spread element
	MinItems int
	MaxItems *int // nil means unbounded
}

func (*Tuple) Kind() Kind { return KindTuple }

// Union is an ordered list of alternative member ASTs.
type Union struct {
	Base
	Members []Node
}

func (*Union) Kind() Kind { return KindUnion }

// Intersection is an ordered list of member ASTs that must all hold.
type Intersection struct {
	Base
	Members []Node
}

func (*Intersection) Kind() Kind { return KindIntersection }

// EnumMember pairs a generated member name with the literal AST for its
// value.
type EnumMember struct {
	Name  string
	Value Node
}

// Enum is an ordered list of named members. Per invariant 4, an Enum
// always carries a StandaloneName.
type Enum struct {
	Base
	Members []EnumMember
}

func (*Enum) Kind() Kind { return KindEnum }

// InterfaceParam is one parameter (property) of an Interface node.
type InterfaceParam struct {
	AST                     Node
	KeyName                 string
	Required                bool
	IsPatternProperty       bool
	IsUnreachableDefinition bool
}

// Interface is a record-shaped AST: an ordered parameter list, an optional
// mapped-key constraint, an ordered list of super-types, and optional
// generic parameter names/bindings.
type Interface struct {
	Base
	Params        []InterfaceParam
	ParamsKeyType Node // non-nil for a mapped-key interface
	SuperTypes    []Node
	GenericParams []string
	GenericValues []Node
}

func (*Interface) Kind() Kind { return KindInterface }

// TypeReference names one specific member of an already-translated AST,
// used to refer to a single enum member by identity.
type TypeReference struct {
	Base
	Referenced Node
	Picked     Node
}

func (*TypeReference) Kind() Kind { return KindTypeReference }
