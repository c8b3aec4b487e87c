package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Vars holds placeholder values for endpoint templates.
type Vars map[string]string

// Placeholder names understood by endpoint templates.
const (
	VarGene = "gene"
	VarID   = "id"
	VarOrg  = "org"
)

// EscapeQueryValue query-escapes a substituted value. Colons stay literal so
// organism-qualified ids ("ECOLI:EG11345") read the same on the wire.
func EscapeQueryValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%3A", ":")
}

// RenderTemplate replaces {{name}} placeholders in tmpl with escaped values from vars.
func RenderTemplate(tmpl string, vars Vars) (string, error) {
	// Fast path: no token start.
	if !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 16)

	for i := 0; i < len(tmpl); {
		if i+1 < len(tmpl) && tmpl[i] == '{' && tmpl[i+1] == '{' {
			start := i + 2

			end := strings.Index(tmpl[start:], "}}")
			if end < 0 {
				return "", &OpError{
					Op:   "template.render",
					Kind: KindInvalidConfig,
					Err:  errors.New("unclosed placeholder"),
				}
			}
			end = start + end

			name := strings.TrimSpace(tmpl[start:end])
			if name == "" {
				return "", &OpError{
					Op:   "template.render",
					Kind: KindInvalidConfig,
					Err:  errors.New("empty placeholder"),
				}
			}

			val, ok := vars[name]
			if !ok {
				return "", &OpError{
					Op:   "template.render",
					Kind: KindMissingVar,
					Err:  fmt.Errorf("missing variable: %s: %w", name, ErrMissingVar),
				}
			}

			b.WriteString(EscapeQueryValue(val))
			i = end + 2
			continue
		}

		b.WriteByte(tmpl[i])
		i++
	}

	return b.String(), nil
}

// CheckTemplate verifies that tmpl parses and only references allowed placeholders.
func CheckTemplate(tmpl string, allowed ...string) error {
	vars := Vars{}
	for _, name := range allowed {
		vars[name] = "x"
	}
	_, err := RenderTemplate(tmpl, vars)
	return err
}
