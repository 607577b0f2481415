package main

import (
	"encoding/json"
	"testing"

	"tidy/internal/categories"
)

func TestCategoriesCommandRendersTable(t *testing.T) {
	env := setupCLITestEnv(t)
	stdout, _, err := runCLI(t, env, "categories")
	if err != nil {
		t.Fatalf("tidy categories: %v", err)
	}
	for _, want := range []string{"Category", "Extensions", "Images", ".png", "Code", ".go", "Others", "anything else"} {
		requireContains(t, stdout, want)
	}
	requireNotContains(t, stdout, "Shared extensions")
}

func TestCategoriesCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	stdout, _, err := runCLI(t, env, "categories", "--json")
	if err != nil {
		t.Fatalf("tidy categories --json: %v", err)
	}
	var view categoriesView
	if err := json.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(view.Categories) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(view.Categories))
	}
	if view.Fallback != categories.Others {
		t.Fatalf("fallback = %q", view.Fallback)
	}
	if view.Categories[0].Name != "Images" || view.Categories[0].Extensions[0] != ".png" {
		t.Fatalf("unexpected first category: %+v", view.Categories[0])
	}
	if view.Ambiguous == nil || len(view.Ambiguous) != 0 {
		t.Fatalf("default table has no shared extensions, got %+v", view.Ambiguous)
	}
}

func TestRenderCategoriesListsSharedExtensions(t *testing.T) {
	table := categories.Build([]categories.Category{
		{Name: "Docs", Extensions: []string{".txt", ".md"}},
		{Name: "Notes", Extensions: []string{".TXT"}},
	})
	out := renderCategories(buildCategoriesView(table))

	requireContains(t, out, "Shared extensions routed to Others:")
	requireContains(t, out, ".txt (Docs, Notes)")
}
