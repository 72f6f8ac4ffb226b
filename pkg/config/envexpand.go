package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// expandEnv substitutes {{.VAR}} references in YAML content with values
// from the environment. Template syntax is used instead of $ expansion
// so loop prompts and credentials containing literal $ pass through
// untouched. Missing variables expand to the empty string; validation
// catches required fields left empty. Content that fails to parse or
// execute as a template is returned unchanged.
func expandEnv(data []byte) []byte {
	tmpl, err := template.New("symphony").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
