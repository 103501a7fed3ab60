// Package bank: the Serialization Codec.
// A Bank persists as a YAML document enumerating, per entry in insertion
// order, the feature kind name, its parameter mapping and its index spec.
// The form is human-readable and diffable:
//
//	entries:
//	    - kind: Mean
//	      index: all
//	    - kind: DominantFrequency
//	      parameters:
//	          high_cutoff: 5
//	          low_cutoff: 0
//	          padlevel: 2
//	      index: [0, 2]
//
// Load reconstructs each feature through the feature package's kind
// registry; an unregistered kind errors with feature.ErrUnknownKind. A
// loaded Bank reproduces bit-identical Compute output.

package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sigfeat/sigfeat/feature"
)

// bankDocument is the persisted top-level form.
type bankDocument struct {
	Entries []entryDocument `yaml:"entries"`
}

// entryDocument is the persisted form of one entry.
type entryDocument struct {
	Kind       string             `yaml:"kind"`
	Parameters map[string]float64 `yaml:"parameters,omitempty"`
	Index      IndexSpec          `yaml:"index"`
}

// Save writes the Bank's full configuration to path (0644, truncating).
func (b *Bank) Save(path string) error {
	doc := bankDocument{Entries: make([]entryDocument, len(b.entries))}
	for i, e := range b.entries {
		doc.Entries[i] = entryDocument{
			Kind:       e.feat.Kind(),
			Parameters: paramMap(e.feat.Params()),
			Index:      e.index,
		}
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("bank: encode %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads a persisted configuration from path and replaces the Bank's
// entire entry collection. Features are rebuilt via the kind registry; no
// duplicate warnings are emitted, since Load is replacement, not addition.
func (b *Bank) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc bankDocument
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("bank: decode %s: %w", path, err)
	}

	entries := make([]entry, len(doc.Entries))
	for i, d := range doc.Entries {
		f, err := feature.Build(d.Kind, feature.Params(d.Parameters))
		if err != nil {
			return err
		}
		entries[i] = entry{feat: f, index: d.Index}
	}
	b.entries = entries

	return nil
}

// paramMap converts an ordered parameter list into the persisted mapping.
func paramMap(params []feature.Param) map[string]float64 {
	if len(params) == 0 {
		return nil
	}
	m := make(map[string]float64, len(params))
	for _, p := range params {
		m[p.Name] = p.Value
	}

	return m
}
