package builder

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

var codeTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"input": input,
}).Parse(`import { useForm } from "react-hook-form";

export default function App() {
  const { register, handleSubmit, formState: { errors } } = useForm();
  const onSubmit = data => console.log(data);
  console.log(errors);

  return (
    <form onSubmit={handleSubmit(onSubmit)}>
{{- range .}}
      {{input .}}
{{- end}}

      <input type="submit" />
    </form>
  );
}
`))

// Generate renders the react-hook-form component for fields.
func Generate(fields []Field) (string, error) {
	var buf bytes.Buffer
	if err := codeTemplate.Execute(&buf, fields); err != nil {
		return "", fmt.Errorf("generate form code: %w", err)
	}
	return buf.String(), nil
}

func input(f Field) string {
	reg := register(f)
	switch f.Type {
	case "select":
		return fmt.Sprintf(`<select %s>
        <option value="">%s</option>
      </select>`, reg, f.Name)
	case "textarea":
		return fmt.Sprintf(`<textarea placeholder=%s %s />`, strconv.Quote(f.Name), reg)
	case "checkbox", "radio":
		return fmt.Sprintf(`<input type=%q %s />`, f.Type, reg)
	default:
		return fmt.Sprintf(`<input type=%q placeholder=%s %s />`, f.Type, strconv.Quote(f.Name), reg)
	}
}

// register renders the spread register call with the field's rules.
func register(f Field) string {
	var rules []string
	if f.Required {
		rules = append(rules, "required: true")
	}
	if f.Min != "" {
		rules = append(rules, "min: "+f.Min)
	}
	if f.Max != "" {
		rules = append(rules, "max: "+f.Max)
	}
	if f.MinLength > 0 {
		rules = append(rules, "minLength: "+strconv.Itoa(f.MinLength))
	}
	if f.MaxLength > 0 {
		rules = append(rules, "maxLength: "+strconv.Itoa(f.MaxLength))
	}
	if f.Pattern != "" {
		rules = append(rules, "pattern: /"+escapeSlashes(f.Pattern)+"/")
	}

	if len(rules) == 0 {
		return fmt.Sprintf("{...register(%s)}", strconv.Quote(f.Name))
	}
	return fmt.Sprintf("{...register(%s, {%s})}", strconv.Quote(f.Name), strings.Join(rules, ", "))
}

// escapeSlashes escapes the slashes that would end a regex literal. Escape
// sequences the pattern already has are copied as they are.
func escapeSlashes(pattern string) string {
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '/':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
