package docs

import (
	"slices"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopicsLoad(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("GetAllTopics() returned no topics")
	}
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) error = %v", topic, err)
		}
		if len(content) == 0 {
			t.Errorf("GetTopic(%q) returned empty content", topic)
		}
	}
}

func TestGetTopic_unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() on an unknown topic did not fail")
	}
}

// TestReadmeListsAllTopics keeps the readme in sync with the shipped topic
// files: every topic file must appear as a code span in a readme list item,
// and every listed name must exist as a topic.
func TestReadmeListsAllTopics(t *testing.T) {
	source, err := docs.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("reading readme.md: %v", err)
	}

	root := goldmark.New().Parser().Parse(text.NewReader(source))
	var listed []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if span, ok := n.(*ast.CodeSpan); ok && insideListItem(span) {
			listed = append(listed, string(span.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	slices.Sort(listed)

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if !slices.Equal(listed, topics) {
		t.Errorf("readme topic list = %v, shipped topics = %v", listed, topics)
	}
}

func insideListItem(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == ast.KindListItem {
			return true
		}
	}
	return false
}
