package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "simple content", content: "https://example.com/data.json"},
		{name: "empty string", content: ""},
		{name: "unicode content", content: "café über naïve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("https://example.com/a.json")
	id2 := IDFromContent("https://example.com/b.json")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestValues(t *testing.T) {
	records := []Record{
		{Title: "Apple", Value: "apple"},
		{Title: "Banana", Value: "banana"},
	}

	values := Values(records)
	if len(values) != 2 {
		t.Fatalf("Values() returned %d entries, want 2", len(values))
	}
	if values[0] != "apple" || values[1] != "banana" {
		t.Errorf("Values() = %v, want [apple banana]", values)
	}
}

func TestValues_Empty(t *testing.T) {
	values := Values(nil)
	if len(values) != 0 {
		t.Errorf("Values(nil) returned %d entries, want 0", len(values))
	}
}
