// Package manifest compiles the embedded configuration mapping.
//
// The mapping is a fixed, read-only value: a name, a version, and an ordered
// feature list. It is expressed as a CUE document so loading exercises the
// same compile-validate-decode path used for any configuration surface, but
// nothing is ever read from disk or persisted.
package manifest

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed manifest.cue
var manifestCUE string

// Manifest is the decoded configuration mapping.
type Manifest struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// Load compiles the embedded CUE document, decodes the manifest value, and
// validates it. The result is a fresh value on every call; callers may not
// observe each other's copies.
func Load() (*Manifest, error) {
	ctx := cuecontext.New()

	value := ctx.CompileString(manifestCUE, cue.Filename("manifest.cue"))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compiling manifest: %w", err)
	}

	root := value.LookupPath(cue.ParsePath("manifest"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("manifest field missing: %w", err)
	}

	var m Manifest
	if err := root.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return &m, nil
}

// validate checks the structural invariants of the mapping.
func (m *Manifest) validate() error {
	if m.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if m.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if len(m.Features) == 0 {
		return fmt.Errorf("at least one feature is required")
	}
	for i, f := range m.Features {
		if f == "" {
			return fmt.Errorf("feature %d must not be empty", i)
		}
	}
	return nil
}
