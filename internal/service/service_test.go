package service

import (
	"strings"
	"testing"
	"time"

	"github.com/promptdeck/promptdeck/internal/errors"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage() error: %v", err)
	}
	if err := store.InitLibrary(); err != nil {
		t.Fatalf("InitLibrary() error: %v", err)
	}
	return NewServiceWithStorage(store)
}

func seedExample(t *testing.T, svc *Service, slug, category, difficulty string) *models.Example {
	t.Helper()
	example := &models.Example{
		Slug:       slug,
		Name:       "Example " + slug,
		Summary:    "A worked example about " + slug,
		Category:   category,
		Difficulty: difficulty,
		Template:   "System: teach {topic} using " + slug,
		Body:       "# " + slug + "\n\nNotes about the technique.",
	}
	if err := svc.CreateExample(example); err != nil {
		t.Fatalf("CreateExample(%s) error: %v", slug, err)
	}
	return example
}

func TestCreateAndGetExample(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "role-prompting", "structure", models.DifficultyBeginner)

	got, err := svc.GetExample("role-prompting")
	if err != nil {
		t.Fatalf("GetExample() error: %v", err)
	}
	if got.Name != "Example role-prompting" {
		t.Errorf("title = %q", got.Name)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestGetExampleNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetExample("missing")
	if err == nil {
		t.Fatal("GetExample(missing) expected an error")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("error is not an AppError: %v", err)
	}
	if appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrCodeNotFound)
	}
}

func TestCreateExampleRejectsDuplicateSlug(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "dupe", "basics", models.DifficultyBeginner)

	err := svc.CreateExample(&models.Example{
		Slug:     "dupe",
		Name:     "Another",
		Template: "text",
	})
	if err == nil {
		t.Fatal("duplicate create expected an error")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeAlreadyExists {
		t.Errorf("error = %v, want ALREADY_EXISTS", err)
	}
}

func TestCreateExampleValidates(t *testing.T) {
	svc := newTestService(t)

	err := svc.CreateExample(&models.Example{Slug: "Bad Slug!", Name: "x", Template: "y"})
	if err == nil {
		t.Fatal("invalid slug expected an error")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeValidation {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}

func TestListExamplesSorted(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "zz-last", "structure", models.DifficultyBeginner)
	seedExample(t, svc, "aa-first", "basics", models.DifficultyBeginner)
	seedExample(t, svc, "mm-mid", "basics", models.DifficultyAdvanced)

	examples, err := svc.ListExamples()
	if err != nil {
		t.Fatalf("ListExamples() error: %v", err)
	}
	if len(examples) != 3 {
		t.Fatalf("got %d examples, want 3", len(examples))
	}

	// Ordered by category, then slug
	wantOrder := []string{"aa-first", "mm-mid", "zz-last"}
	for i, want := range wantOrder {
		if examples[i].Slug != want {
			t.Errorf("examples[%d].Slug = %q, want %q", i, examples[i].Slug, want)
		}
	}
}

func TestSearchExamples(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "json-contract", "output-format", models.DifficultyIntermediate)
	seedExample(t, svc, "guardrails", "constraints", models.DifficultyBeginner)

	results, err := svc.SearchExamples("json")
	if err != nil {
		t.Fatalf("SearchExamples() error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("search for 'json' found nothing")
	}
	if results[0].Slug != "json-contract" {
		t.Errorf("top result = %q, want json-contract", results[0].Slug)
	}

	// Empty query returns the full catalog
	all, err := svc.SearchExamples("")
	if err != nil {
		t.Fatalf("SearchExamples(\"\") error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("empty query = %d results, want 2", len(all))
	}
}

func TestFilters(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "one", "basics", models.DifficultyBeginner)
	seedExample(t, svc, "two", "structure", models.DifficultyAdvanced)
	seedExample(t, svc, "three", "structure", models.DifficultyBeginner)

	byCategory, err := svc.FilterByCategory("STRUCTURE")
	if err != nil {
		t.Fatalf("FilterByCategory() error: %v", err)
	}
	if len(byCategory) != 2 {
		t.Errorf("category filter = %d results, want 2 (case-insensitive)", len(byCategory))
	}

	byDifficulty, err := svc.FilterByDifficulty("beginner")
	if err != nil {
		t.Fatalf("FilterByDifficulty() error: %v", err)
	}
	if len(byDifficulty) != 2 {
		t.Errorf("difficulty filter = %d results, want 2", len(byDifficulty))
	}
}

func TestListCategories(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "one", "structure", models.DifficultyBeginner)
	seedExample(t, svc, "two", "basics", models.DifficultyBeginner)
	seedExample(t, svc, "three", "basics", models.DifficultyBeginner)

	categories, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories() error: %v", err)
	}
	if len(categories) != 2 || categories[0] != "basics" || categories[1] != "structure" {
		t.Errorf("categories = %v, want [basics structure]", categories)
	}
}

func TestUpdateExample(t *testing.T) {
	svc := newTestService(t)
	created := seedExample(t, svc, "evolving", "basics", models.DifficultyBeginner)
	createdAt := created.CreatedAt

	time.Sleep(10 * time.Millisecond)
	updated := &models.Example{
		Slug:       "evolving",
		Name:       "Evolving example",
		Summary:    "now with a better summary",
		Category:   "basics",
		Difficulty: models.DifficultyIntermediate,
		Template:   "System: new template with {variable}",
	}
	if err := svc.UpdateExample(updated); err != nil {
		t.Fatalf("UpdateExample() error: %v", err)
	}

	got, err := svc.GetExample("evolving")
	if err != nil {
		t.Fatalf("GetExample() error: %v", err)
	}
	if got.Name != "Evolving example" {
		t.Errorf("title = %q", got.Name)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("update changed creation time: %v vs %v", got.CreatedAt, createdAt)
	}
	if !got.UpdatedAt.After(createdAt) {
		t.Error("update did not advance UpdatedAt")
	}
}

func TestUpdateExampleMissing(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateExample(&models.Example{Slug: "ghost", Name: "x", Template: "y"})
	if err == nil {
		t.Fatal("update of missing example expected an error")
	}
}

func TestDeleteExample(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "doomed", "basics", models.DifficultyBeginner)

	if err := svc.DeleteExample("doomed"); err != nil {
		t.Fatalf("DeleteExample() error: %v", err)
	}
	if _, err := svc.GetExample("doomed"); err == nil {
		t.Error("example still retrievable after delete")
	}
}

func TestVariablesAndRender(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "teach", "basics", models.DifficultyBeginner)

	variables, err := svc.Variables("teach")
	if err != nil {
		t.Fatalf("Variables() error: %v", err)
	}
	if len(variables) != 1 || variables[0] != "topic" {
		t.Errorf("variables = %v, want [topic]", variables)
	}

	bindings := models.NewBindings().Set("topic", "recursion")
	rendered, err := svc.RenderExample("teach", bindings)
	if err != nil {
		t.Fatalf("RenderExample() error: %v", err)
	}
	if !strings.Contains(rendered, "teach recursion") {
		t.Errorf("rendered = %q", rendered)
	}

	asJSON, err := svc.RenderExampleJSON("teach", bindings)
	if err != nil {
		t.Fatalf("RenderExampleJSON() error: %v", err)
	}
	if !strings.Contains(asJSON, `"role": "user"`) {
		t.Errorf("JSON render = %q", asJSON)
	}
}

func TestScoreExample(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "scored", "basics", models.DifficultyBeginner)

	result, err := svc.ScoreExample("scored")
	if err != nil {
		t.Fatalf("ScoreExample() error: %v", err)
	}
	// Template has "System:" and a placeholder
	if result.Score < 65 {
		t.Errorf("score = %d, want at least 65", result.Score)
	}
}

func TestLintExample(t *testing.T) {
	svc := newTestService(t)
	seedExample(t, svc, "clean", "basics", models.DifficultyBeginner)

	result, err := svc.LintExample("clean")
	if err != nil {
		t.Fatalf("LintExample() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("lint of a valid example failed: %+v", result.Errors)
	}
}
