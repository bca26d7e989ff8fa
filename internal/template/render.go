// Package template implements placeholder substitution for filename patterns
// and generated solution stubs. Placeholders are written as {name} where name
// is a lowercase identifier; everything else passes through unchanged.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{[a-z][a-z0-9_]*\}`)

// Render replaces every {name} token that has a mapping in vars. Tokens
// without a mapping are left in place, so source-code braces survive.
func Render(s string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// RenderStrict is Render, except that a token without a mapping is an error.
// Filename patterns and command argv templates use this mode so that a typo in
// a config pattern fails loudly instead of leaking a literal {token}.
func RenderStrict(s string, vars map[string]string) (string, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		missing = append(missing, m)
		return m
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("strict templating: invalid placeholder %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// RenderArgs renders an argv template element-wise in strict mode.
func RenderArgs(argsT []string, vars map[string]string) ([]string, error) {
	rendered := make([]string, len(argsT))
	for i := range argsT {
		a, err := RenderStrict(argsT[i], vars)
		if err != nil {
			return nil, err
		}
		rendered[i] = a
	}
	return rendered, nil
}
