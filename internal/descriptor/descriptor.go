// Where: internal/descriptor/descriptor.go
// What: Deployment descriptor model backed by the parsed YAML document.
// Why: Mutate function layers and provider policies without losing unknown content.
package descriptor

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Supported function architectures.
const (
	ArchX8664 = "x86_64"
	ArchARM64 = "arm64"
)

// Descriptor wraps a parsed serverless.yml document. Mutations are applied
// to the underlying node tree so write-back keeps key order and any content
// this tool does not understand.
type Descriptor struct {
	root *yaml.Node
}

// Function is one named entry of the functions mapping with its properties
// decoded into plain values. Type checks on recognized options happen at the
// insights layer, not here.
type Function struct {
	Name  string
	Props map[string]any
}

// Parse validates the document shape against the embedded schema and wraps
// the parsed node tree.
func Parse(content []byte) (*Descriptor, error) {
	if err := validateDescriptor(content); err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse descriptor: empty document")
	}
	return &Descriptor{root: doc.Content[0]}, nil
}

// Functions returns the entries of the functions mapping in declaration
// order. A missing or non-mapping functions section yields no entries; the
// descriptor is still valid.
func (d *Descriptor) Functions() ([]Function, error) {
	section := mapValue(d.root, "functions")
	if section == nil || section.Kind != yaml.MappingNode {
		return nil, nil
	}
	functions := make([]Function, 0, len(section.Content)/2)
	for i := 0; i+1 < len(section.Content); i += 2 {
		name := section.Content[i].Value
		props := map[string]any{}
		value := section.Content[i+1]
		if value.Kind == yaml.MappingNode {
			if err := value.Decode(&props); err != nil {
				return nil, fmt.Errorf("decode function %s: %w", name, err)
			}
		}
		functions = append(functions, Function{Name: name, Props: props})
	}
	return functions, nil
}

// ProviderValue returns a raw value from the provider mapping when present.
func (d *Descriptor) ProviderValue(key string) (any, bool) {
	provider := mapValue(d.root, "provider")
	if provider == nil || provider.Kind != yaml.MappingNode {
		return nil, false
	}
	return decodeValue(mapValue(provider, key))
}

// Custom returns a raw entry of the custom mapping when present.
func (d *Descriptor) Custom(key string) (any, bool) {
	custom := mapValue(d.root, "custom")
	if custom == nil || custom.Kind != yaml.MappingNode {
		return nil, false
	}
	return decodeValue(mapValue(custom, key))
}

// AppendLayer appends a layer ARN to the named function, creating the layers
// sequence when absent. Existing entries are kept as-is, duplicates included.
func (d *Descriptor) AppendLayer(functionName, arn string) error {
	section := mapValue(d.root, "functions")
	if section == nil || section.Kind != yaml.MappingNode {
		return fmt.Errorf("functions section is not a mapping")
	}
	fn := mapValue(section, functionName)
	if fn == nil {
		return fmt.Errorf("function %s not found", functionName)
	}
	if !asMapping(fn) {
		return fmt.Errorf("function %s is not a mapping", functionName)
	}
	seq, err := ensureSequence(fn, "layers")
	if err != nil {
		return fmt.Errorf("function %s: %w", functionName, err)
	}
	appendScalar(seq, arn)
	return nil
}

// AppendManagedPolicy appends a managed policy ARN to
// provider.iamManagedPolicies, creating provider and the sequence as needed.
func (d *Descriptor) AppendManagedPolicy(arn string) error {
	provider, err := ensureMapping(d.root, "provider")
	if err != nil {
		return err
	}
	seq, err := ensureSequence(provider, "iamManagedPolicies")
	if err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	appendScalar(seq, arn)
	return nil
}

// Marshal renders the document back to YAML with two-space indentation.
func (d *Descriptor) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(d.root); err != nil {
		return nil, fmt.Errorf("render descriptor: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
