package inline

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var schemaTargets = map[string]any{
	"listing": &Output{},
	"landing": &LandingOutput{},
	"history": &HistoryOutput{},
	"queries": &QueriesOutput{},
}

// SchemaKinds lists the documents Schema can describe.
func SchemaKinds() []string {
	kinds := lo.Keys(schemaTargets)
	slices.Sort(kinds)
	return kinds
}

// Schema returns the JSON Schema of the inline output of the given kind.
func Schema(kind string) (*jsonschema.Schema, error) {
	target, ok := schemaTargets[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q, expected one of %v", kind, SchemaKinds())
	}

	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	return reflector.Reflect(target), nil
}
