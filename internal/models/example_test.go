package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExampleJSONWireNames(t *testing.T) {
	e := Example{
		Slug:        "few-shot-basics",
		Name:        "Few-shot basics",
		Summary:     "Show the model what good output looks like",
		Category:    "few-shot",
		Difficulty:  DifficultyBeginner,
		Template:    "Classify {input}",
		FilePath:    "/tmp/few-shot-basics.md",
		ContentHash: "abc123",
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)

	// Same field names the HTTP API uses
	for _, key := range []string{`"slug"`, `"title"`, `"description"`, `"category"`, `"difficulty"`, `"template"`} {
		if !strings.Contains(got, key) {
			t.Errorf("missing key %s in %s", key, got)
		}
	}
	for _, leaked := range []string{`"Name"`, `"Summary"`, `"FilePath"`, "/tmp/", "abc123"} {
		if strings.Contains(got, leaked) {
			t.Errorf("unexpected %s in %s", leaked, got)
		}
	}
}

func TestExampleJSONRoundTrip(t *testing.T) {
	original := Example{
		Slug:     "json-contract",
		Name:     "JSON contract",
		Body:     "Explain the schema first.",
		Pitfalls: []string{"forgetting to pin the schema"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Example
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Slug != original.Slug || decoded.Name != original.Name {
		t.Errorf("round trip changed identity: %+v", decoded)
	}
	if decoded.Body != original.Body {
		t.Errorf("body = %q", decoded.Body)
	}
	if len(decoded.Pitfalls) != 1 {
		t.Errorf("pitfalls = %v", decoded.Pitfalls)
	}
}
