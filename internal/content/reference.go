package content

// Reference is the typed content contract of one API reference page. Every
// field a page renders is named here; unknown fields in the mapping file are
// rejected by the decoder and the struct is validated when the store is built.
//
// Text fields may use backticks for inline code.
type Reference struct {
	Name        string    `yaml:"name" validate:"required"`
	Subtitle    string    `yaml:"subtitle,omitempty"`
	TypeName    string    `yaml:"typeName" validate:"required"`
	TypeLink    string    `yaml:"typeLink,omitempty"`
	Since       string    `yaml:"since,omitempty"`
	SinceURL    string    `yaml:"sinceUrl,omitempty" validate:"omitempty,url"`
	Description []string  `yaml:"description" validate:"required,min=1,dive,required"`
	Props       []Field   `yaml:"props,omitempty" validate:"dive"`
	Return      []Field   `yaml:"return,omitempty" validate:"dive"`
	Rules       []Rule    `yaml:"rules,omitempty" validate:"dive"`
	TypeScript  []Rule    `yaml:"typescript,omitempty" validate:"dive"`
	Examples    []Example `yaml:"examples" validate:"required,min=1,dive"`
	Tips        []Tip     `yaml:"tips,omitempty" validate:"dive"`
}

// Field is one row of a props or return table.
type Field struct {
	Name        string `yaml:"name" validate:"required"`
	Type        string `yaml:"type" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Condition   string `yaml:"condition,omitempty"`
	Code        string `yaml:"code,omitempty"`
}

// Link is an external reference attached to a rule.
type Link struct {
	Text string `yaml:"text" validate:"required"`
	URL  string `yaml:"url" validate:"required,url"`
}

// Rule is one usage rule, optionally with a code sample and nested rules.
type Rule struct {
	Text     []string `yaml:"text" validate:"required,min=1,dive,required"`
	Code     string   `yaml:"code,omitempty"`
	NoCopy   bool     `yaml:"noCopy,omitempty"`
	Links    []Link   `yaml:"links,omitempty" validate:"dive"`
	Children []Rule   `yaml:"children,omitempty" validate:"dive"`
}

// Example is one panel of the examples tab group. TSCode, when present, adds
// a TypeScript variant next to the JavaScript one.
type Example struct {
	Label  string `yaml:"label" validate:"required"`
	Code   string `yaml:"code" validate:"required"`
	TSCode string `yaml:"tsCode,omitempty"`
	URL    string `yaml:"url,omitempty" validate:"omitempty,url"`
	TSURL  string `yaml:"tsUrl,omitempty" validate:"omitempty,url"`
}

// Tip is a titled question/answer block with an optional sample.
type Tip struct {
	Title string   `yaml:"title" validate:"required"`
	Text  []string `yaml:"text" validate:"required,min=1,dive,required"`
	Code  string   `yaml:"code,omitempty"`
	URL   string   `yaml:"url,omitempty" validate:"omitempty,url"`
}

// Slug is the URL path segment used for the reference.
func (r Reference) Slug() string {
	return slugify(r.Name)
}

// ExampleLabels returns the tab labels of the examples group.
func (r Reference) ExampleLabels() []string {
	labels := make([]string, len(r.Examples))
	for i, ex := range r.Examples {
		labels[i] = ex.Label
	}
	return labels
}

func (r Reference) clone() Reference {
	out := r
	out.Description = cloneSlice(r.Description)
	out.Props = cloneSlice(r.Props)
	out.Return = cloneSlice(r.Return)
	out.Rules = cloneRules(r.Rules)
	out.TypeScript = cloneRules(r.TypeScript)
	out.Examples = cloneSlice(r.Examples)
	out.Tips = cloneSlice(r.Tips)
	for i := range out.Tips {
		out.Tips[i].Text = cloneSlice(r.Tips[i].Text)
	}
	return out
}

func cloneRules(in []Rule) []Rule {
	if in == nil {
		return nil
	}
	out := make([]Rule, len(in))
	for i, rule := range in {
		rule.Text = cloneSlice(rule.Text)
		rule.Links = cloneSlice(rule.Links)
		rule.Children = cloneRules(rule.Children)
		out[i] = rule
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
