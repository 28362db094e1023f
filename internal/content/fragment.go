package content

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Row is one line of a structured fragment, rendered as a table row.
type Row struct {
	Name        string `yaml:"name" validate:"required"`
	Type        string `yaml:"type,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Fragment is the displayable value of one content entry: either plain text
// or a set of table rows (or both, text acting as a caption).
type Fragment struct {
	Text string `yaml:"text,omitempty"`
	Rows []Row  `yaml:"rows,omitempty" validate:"dive"`
}

// Empty reports whether the fragment carries nothing to display.
func (f Fragment) Empty() bool {
	return f.Text == "" && len(f.Rows) == 0
}

func (f Fragment) clone() Fragment {
	out := Fragment{Text: f.Text}
	if f.Rows != nil {
		out.Rows = make([]Row, len(f.Rows))
		copy(out.Rows, f.Rows)
	}
	return out
}

// fragmentFields mirrors Fragment without its custom YAML methods.
type fragmentFields struct {
	Text string `yaml:"text,omitempty"`
	Rows []Row  `yaml:"rows,omitempty"`
}

// UnmarshalYAML accepts either a bare string or a {text, rows} mapping.
func (f *Fragment) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var text string
		if err := node.Decode(&text); err != nil {
			return err
		}
		*f = Fragment{Text: text}
		return nil
	case yaml.MappingNode:
		if err := onlyFields(node, "text", "rows"); err != nil {
			return err
		}
		if rows := mappingValue(node, "rows"); rows != nil && rows.Kind == yaml.SequenceNode {
			for _, row := range rows.Content {
				if err := onlyFields(row, "name", "type", "description"); err != nil {
					return err
				}
			}
		}
		var fields fragmentFields
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*f = Fragment(fields)
		return nil
	default:
		return fmt.Errorf("line %d: fragment must be a string or a mapping", node.Line)
	}
}

// MarshalYAML writes text-only fragments back as bare strings.
func (f Fragment) MarshalYAML() (interface{}, error) {
	if len(f.Rows) == 0 {
		return f.Text, nil
	}
	return fragmentFields(f), nil
}

// onlyFields rejects mapping keys outside names. node.Decode starts a fresh
// decoder, so the strict mode of Unmarshal does not reach custom unmarshalers.
func onlyFields(node *yaml.Node, names ...string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(names, key.Value) {
			return fmt.Errorf("line %d: field %s not found in fragment", key.Line, key.Value)
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, name string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == name {
			return node.Content[i+1]
		}
	}
	return nil
}
