// Package frontmatter splits Markdown documents into YAML front matter and body.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// Split separates the raw front matter block from the body.
// ok is false when content has no complete front matter block, in which
// case body is the whole content.
func Split(content []byte) (raw string, body string, ok bool) {
	text := string(content)

	if !strings.HasPrefix(text, delim) {
		return "", text, false
	}

	rest := strings.TrimPrefix(text[len(delim):], "\n")

	idx := strings.Index(rest, "\n"+delim)
	if idx == -1 {
		return "", text, false
	}

	raw = rest[:idx]
	body = strings.TrimPrefix(rest[idx+len(delim)+1:], "\n")
	return raw, body, true
}

// ParseTyped decodes the front matter of content into target and returns the body.
func ParseTyped[T any](content []byte, target *T) (string, error) {
	raw, body, ok := Split(content)
	if !ok {
		return body, nil
	}

	if err := yaml.Unmarshal([]byte(raw), target); err != nil {
		return "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return body, nil
}

// Field returns the value of a top-level "key: value" line in the front
// matter without decoding YAML. Note templates carry tokens like
// "[#paper, #to-read]" that are not valid YAML, so they are read this way.
func Field(content []byte, key string) (string, bool) {
	raw, _, ok := Split(content)
	if !ok {
		return "", false
	}
	prefix := key + ":"
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}
