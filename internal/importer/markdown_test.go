package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/promptdeck/promptdeck/internal/storage"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage() error: %v", err)
	}
	if err := store.InitLibrary(); err != nil {
		t.Fatalf("InitLibrary() error: %v", err)
	}
	return store
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) error: %v", name, err)
	}
}

func TestImportPlainMarkdown(t *testing.T) {
	store := newTestStorage(t)
	src := t.TempDir()
	writeFile(t, src, "My Cool Prompt.md", "# Summarize Anything\n\nSummarize {input} in two sentences.")

	result, err := NewMarkdownImporter(store).Import(src, ImportOptions{
		Category:   "imported",
		Difficulty: "beginner",
	})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	if len(result.Imported) != 1 {
		t.Fatalf("imported %d files, want 1 (errors: %v)", len(result.Imported), result.Errors)
	}
	example := result.Imported[0]
	if example.Slug != "my-cool-prompt" {
		t.Errorf("slug = %q, want my-cool-prompt", example.Slug)
	}
	if example.Name != "Summarize Anything" {
		t.Errorf("title = %q, want the H1 text", example.Name)
	}
	if example.Category != "imported" {
		t.Errorf("category = %q, want imported", example.Category)
	}

	// The example must actually be on disk
	loaded, err := store.LoadExample(example.FilePath)
	if err != nil {
		t.Fatalf("LoadExample() error: %v", err)
	}
	if loaded.Template == "" {
		t.Error("imported example has no template")
	}
}

func TestImportFrontmatterFile(t *testing.T) {
	store := newTestStorage(t)
	src := t.TempDir()
	writeFile(t, src, "anything.md", `---
slug: handed-over
title: Handed over
description: Already in catalog format
category: structure
difficulty: advanced
template: 'Do {thing}'
---

Body text here.
`)

	result, err := NewMarkdownImporter(store).Import(src, ImportOptions{Category: "fallback"})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if len(result.Imported) != 1 {
		t.Fatalf("imported %d files, want 1 (errors: %v)", len(result.Imported), result.Errors)
	}

	example := result.Imported[0]
	if example.Slug != "handed-over" {
		t.Errorf("slug = %q, frontmatter slug not honored", example.Slug)
	}
	if example.Category != "structure" {
		t.Errorf("category = %q, frontmatter must beat the option default", example.Category)
	}
}

func TestImportSkipsExistingSlug(t *testing.T) {
	store := newTestStorage(t)
	src := t.TempDir()
	writeFile(t, src, "taken.md", "# Taken\n\nbody")

	imp := NewMarkdownImporter(store)
	if _, err := imp.Import(src, ImportOptions{}); err != nil {
		t.Fatalf("first Import() error: %v", err)
	}

	second, err := imp.Import(src, ImportOptions{})
	if err != nil {
		t.Fatalf("second Import() error: %v", err)
	}
	if len(second.Imported) != 0 || len(second.Skipped) != 1 {
		t.Errorf("re-import: imported=%d skipped=%d, want 0/1", len(second.Imported), len(second.Skipped))
	}

	overwritten, err := imp.Import(src, ImportOptions{OverwriteExisting: true})
	if err != nil {
		t.Fatalf("overwrite Import() error: %v", err)
	}
	if len(overwritten.Imported) != 1 {
		t.Errorf("overwrite import = %d files, want 1", len(overwritten.Imported))
	}
}

func TestImportDryRun(t *testing.T) {
	store := newTestStorage(t)
	src := t.TempDir()
	writeFile(t, src, "preview.md", "# Preview\n\nbody")

	result, err := NewMarkdownImporter(store).Import(src, ImportOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if len(result.Imported) != 1 {
		t.Fatalf("dry run previewed %d files, want 1", len(result.Imported))
	}

	examples, err := store.ListExamples()
	if err != nil {
		t.Fatalf("ListExamples() error: %v", err)
	}
	if len(examples) != 0 {
		t.Errorf("dry run wrote %d examples to disk", len(examples))
	}
}

func TestImportIgnoresNonMarkdown(t *testing.T) {
	store := newTestStorage(t)
	src := t.TempDir()
	writeFile(t, src, "notes.txt", "not markdown")
	writeFile(t, src, "real.md", "# Real\n\nbody")

	result, err := NewMarkdownImporter(store).Import(src, ImportOptions{})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if len(result.Imported) != 1 {
		t.Errorf("imported %d files, want only the .md file", len(result.Imported))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Cool Prompt", "my-cool-prompt"},
		{"already-good", "already-good"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Ünïcode & Symbols!", "n-code-symbols"},
		{"123 numbers", "123-numbers"},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
