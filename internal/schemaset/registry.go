// Package schemaset compiles the bundled description-file schemas into
// reusable validators. The four schemas cross-reference each other via $ref,
// so every document is added to the compiler before any of them is compiled.
package schemaset

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"

	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

// Names lists the schemas every registry must hold, one document per name.
var Names = []string{"project", "collection", "url", "blockchain-address"}

//go:embed schemas/*.json
var builtinFS embed.FS

// Builtin returns the schema documents shipped with the module.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "schemas")
	if err != nil {
		panic(fmt.Sprintf("embedded schema dir missing: %v", err))
	}
	return sub
}

// Registry holds the compiled validators. It is immutable after New and safe
// for concurrent use.
type Registry struct {
	compiled map[string]*santhosh.Schema
}

// New compiles every schema in Names from fsys, where each name maps to a
// "<name>.json" document. Format assertions are enabled: "uri" plus the
// custom "blockchain-address" format.
func New(fsys fs.FS) (*Registry, error) {
	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft7
	compiler.AssertFormat = true
	compiler.Formats["blockchain-address"] = isBlockchainAddress

	for _, name := range Names {
		f, err := fsys.Open(name + ".json")
		if err != nil {
			return nil, fmt.Errorf("open schema %s: %w", name, err)
		}
		err = compiler.AddResource(name+".json", f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	compiled := make(map[string]*santhosh.Schema, len(Names))
	for _, name := range Names {
		sch, err := compiler.Compile(name + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		compiled[name] = sch
	}
	return &Registry{compiled: compiled}, nil
}

// Lookup returns the compiled validator registered under name.
func (r *Registry) Lookup(name string) (*santhosh.Schema, bool) {
	sch, ok := r.compiled[name]
	return sch, ok
}

var (
	evmAddress    = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	base58Address = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
)

// isBlockchainAddress accepts EVM hex addresses and base58 account addresses.
// Non-string values pass; the type keyword reports those.
func isBlockchainAddress(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	return evmAddress.MatchString(s) || base58Address.MatchString(s)
}
