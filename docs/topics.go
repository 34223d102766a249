// Package docs embeds the user documentation topics rendered by the
// `ew topic` command.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Get returns the content of one documentation topic. The special
// topic "*" expands to all topics in order.
func Get(topic string) (string, error) {
	if topic == "*" {
		var b bytes.Buffer
		for _, t := range All() {
			content, err := Get(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, run `ew topic` for the list: %w", topic, err)
	}
	return string(content), nil
}

// All returns the names of every documentation topic, sorted. The
// readme is the index shown by a bare `ew topic` and is not a topic
// itself.
func All() []string {
	var topics []string
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil
	}
	for _, e := range entries {
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if base == "readme" {
			continue
		}
		topics = append(topics, base)
	}
	sort.Strings(topics)
	return topics
}

// Index returns the readme content listing all topics.
func Index() (string, error) {
	content, err := fs.ReadFile(docs, "readme.md")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
