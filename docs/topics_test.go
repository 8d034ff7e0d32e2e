package docs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicsInReadme parses readme.md and returns the topic names announced in
// its list, the part before the colon of each list item.
func topicsInReadme(t *testing.T) []string {
	t.Helper()

	source, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	var topics []string
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		var line strings.Builder
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			for g := c.FirstChild(); g != nil; g = g.NextSibling() {
				if txt, ok := g.(*ast.Text); ok {
					line.Write(txt.Segment.Value(source))
				}
			}
		}
		if topic, _, found := strings.Cut(line.String(), ":"); found {
			topics = append(topics, strings.TrimSpace(topic))
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("failed to walk readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic announced in readme.md can be loaded.
	// 2. Every .md file (except readme.md) is announced in readme.md.

	announced := topicsInReadme(t)
	if len(announced) == 0 {
		t.Fatal("readme.md announces no topics")
	}

	for _, topic := range announced {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		if !slices.Contains(announced, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetTopic_star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) = %v want nil", err)
	}
	for _, topic := range topicsInReadme(t) {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) = %v want nil", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(*) does not contain topic %q", topic)
		}
	}
}

func TestGetTopic_unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) = nil want an error")
	}
}
