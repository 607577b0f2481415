package categories

import (
	"slices"
	"testing"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.png", ".png"},
		{"photo.JPG", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{"trailing.", ""},
		{"..", ""},
		{"", ""},
		{"Résumé.PDF", ".pdf"},
		{"weird.ÄBC", ".äbc"},
		{"a.png ", ".png "},
		{"b. PNG", ". png"},
	}
	for _, tt := range tests {
		if got := ExtensionOf(tt.name); got != tt.want {
			t.Errorf("ExtensionOf(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		".PNG":  ".png",
		"png":   ".png",
		" .Md ": ".md",
		"":      "",
		".":     "",
	}
	for in, want := range tests {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultTableClassifiesDeclaredExtensions(t *testing.T) {
	table := Build(Default())

	tests := []struct {
		file     string
		category string
		reason   Reason
	}{
		{"a.png", "Images", ReasonDeclared},
		{"clip.MKV", "Videos", ReasonDeclared},
		{"notes.md", "Documents", ReasonDeclared},
		{"song.opus", "Audio", ReasonDeclared},
		{"backup.tar.gz", "Archives", ReasonDeclared},
		{"setup.exe", "Executables", ReasonDeclared},
		{"main.go", "Code", ReasonDeclared},
		{"b.unknownext", Others, ReasonUnknown},
		{"c.ini", Others, ReasonUnknown},
		{"Makefile", Others, ReasonNoExtension},
	}
	for _, tt := range tests {
		got := table.Classify(tt.file)
		if got.Category != tt.category || got.Reason != tt.reason {
			t.Errorf("Classify(%q) = %+v, want %s/%s", tt.file, got, tt.category, tt.reason)
		}
	}
	if len(table.Ambiguous()) != 0 {
		t.Fatalf("default declarations should not share extensions, got %v", table.Ambiguous())
	}
}

func TestClassificationIsStable(t *testing.T) {
	first := Build(Default())
	second := Build(Default())
	for _, c := range Default() {
		for _, ext := range c.Extensions {
			a, b := first.Lookup(ext), second.Lookup(ext)
			if a != c.Name || b != c.Name {
				t.Fatalf("Lookup(%q) = %q/%q, want %q", ext, a, b, c.Name)
			}
			if again := first.Lookup(ext); again != a {
				t.Fatalf("repeated Lookup(%q) changed: %q then %q", ext, a, again)
			}
		}
	}
}

func TestClassifyDoesNotTrimFileSuffix(t *testing.T) {
	table := Build([]Category{{Name: "Images", Extensions: []string{" .PNG "}}})

	if res := table.Classify("a.png"); res.Category != "Images" || res.Reason != ReasonDeclared {
		t.Fatalf("Classify(a.png) = %+v", res)
	}
	res := table.Classify("a.png ")
	if res.Category != Others || res.Reason != ReasonUnknown || res.Extension != ".png " {
		t.Fatalf("Classify(%q) = %+v", "a.png ", res)
	}
}

func TestSharedExtensionRoutesToOthers(t *testing.T) {
	table := Build([]Category{
		{Name: "Documents", Extensions: []string{".txt", ".md"}},
		{Name: "Code", Extensions: []string{".go", ".MD"}},
	})

	if got := table.Lookup(".md"); got != Others {
		t.Fatalf("Lookup(.md) = %q, want %q", got, Others)
	}
	res := table.Classify("README.md")
	if res.Category != Others || res.Reason != ReasonAmbiguous {
		t.Fatalf("Classify(README.md) = %+v", res)
	}
	if got := table.Lookup(".txt"); got != "Documents" {
		t.Fatalf("Lookup(.txt) = %q", got)
	}
	if got := table.Lookup(".go"); got != "Code" {
		t.Fatalf("Lookup(.go) = %q", got)
	}

	shared := table.Ambiguous()
	if len(shared) != 1 || shared[0].Extension != ".md" {
		t.Fatalf("Ambiguous() = %+v", shared)
	}
	if !slices.Equal(shared[0].Claimants, []string{"Documents", "Code"}) {
		t.Fatalf("claimants = %v", shared[0].Claimants)
	}

	for _, c := range table.Categories() {
		if slices.Contains(c.Extensions, ".md") {
			t.Fatalf("category %s should not list shared extension .md", c.Name)
		}
	}
}

func TestDuplicateWithinCategoryIsSingleClaim(t *testing.T) {
	table := Build([]Category{
		{Name: "Images", Extensions: []string{".png", ".PNG", "png"}},
	})
	if got := table.Lookup(".png"); got != "Images" {
		t.Fatalf("Lookup(.png) = %q, want Images", got)
	}
	if len(table.Ambiguous()) != 0 {
		t.Fatalf("expected no ambiguity, got %v", table.Ambiguous())
	}
	cats := table.Categories()
	if len(cats) != 1 || !slices.Equal(cats[0].Extensions, []string{".png"}) {
		t.Fatalf("Categories() = %+v", cats)
	}
}

func TestEmptyDeclarationsClassifyEverythingAsOthers(t *testing.T) {
	table := Build(nil)
	if cats := table.Categories(); len(cats) != 0 {
		t.Fatalf("expected no categories, got %+v", cats)
	}
	if shared := table.Ambiguous(); len(shared) != 0 {
		t.Fatalf("expected no shared extensions, got %+v", shared)
	}
	for _, name := range []string{"a.png", "b", ".hidden"} {
		if got := table.Classify(name).Category; got != Others {
			t.Fatalf("Classify(%q) = %q, want Others", name, got)
		}
	}
}

func TestBuildDoesNotAliasInput(t *testing.T) {
	defs := []Category{{Name: "Images", Extensions: []string{".png"}}}
	table := Build(defs)
	defs[0].Extensions[0] = ".gif"
	defs[0].Name = "Changed"

	if got := table.Lookup(".png"); got != "Images" {
		t.Fatalf("table changed after input mutation: %q", got)
	}
	if got := table.Lookup(".gif"); got != Others {
		t.Fatalf("unexpected mapping for .gif: %q", got)
	}
}
