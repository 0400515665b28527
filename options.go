package schemaast

import "github.com/corebridge/schemaast/ast"

// Options controls translation behavior. The zero value is the default:
// ANY stays ANY, and definitions are not turned into interface params.
type Options struct {
	// UnknownAny, when true, replaces every ANY sentinel in the output with
	// UNKNOWN instead.
	UnknownAny bool

	// UnreachableDefinitions, when true, turns each key of a schema's
	// definitions into an interface param (marked
	// IsUnreachableDefinition) alongside its regular properties.
	UnreachableDefinitions bool
}

// anyKind returns the Kind to use for the ANY sentinel under opts.
func (o Options) anyKind() ast.Kind {
	if o.UnknownAny {
		return ast.KindUnknown
	}
	return ast.KindAny
}
