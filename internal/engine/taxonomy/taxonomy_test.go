package taxonomy

import (
	"reflect"
	"testing"

	"github.com/buckeye43210/pyPERM/internal/model"
)

func item(name string, attrs ...string) model.Item {
	return model.Item{Name: name, Attributes: attrs}
}

func TestNewExplicitCategories(t *testing.T) {
	cats := model.Categories{
		{Name: "X", Values: []string{"X:red", "X:blue"}},
		{Name: "Y", Values: []string{"Y:small"}},
	}
	catalog := model.Catalog{Items: []model.Item{item("A", "X:red", "Y:small")}}

	tax := New(cats, catalog, DocumentOrder)

	if !reflect.DeepEqual(tax.Names(), []string{"X", "Y"}) {
		t.Fatalf("Names() = %v", tax.Names())
	}
	if got := tax.Values("X"); !reflect.DeepEqual(got, []string{"X:red", "X:blue"}) {
		t.Errorf("Values(X) = %v, want document order", got)
	}
	if !tax.Has("Y") || tax.Has("Z") {
		t.Error("Has() mismatch")
	}
	if name, ok := tax.CategoryOf("Y:small"); !ok || name != "Y" {
		t.Errorf("CategoryOf(Y:small) = %q, %v", name, ok)
	}
	if len(tax.Unresolved()) != 0 {
		t.Errorf("Unresolved() = %v, want none", tax.Unresolved())
	}
}

func TestNewInfersFromCoOccurringValue(t *testing.T) {
	cats := model.Categories{
		{Name: "X", Values: []string{"X:red"}},
		{Name: "Y", Values: []string{"Y:small"}},
	}
	catalog := model.Catalog{Items: []model.Item{
		item("A", "X:red", "Y:small"),
		item("B", "Y:big", "X:red"),
	}}

	tax := New(cats, catalog, DocumentOrder)

	// B carries X:red before Y:big is placed; X is first in document order.
	if name, _ := tax.CategoryOf("Y:big"); name != "X" {
		t.Fatalf("CategoryOf(Y:big) = %q, want X (first category owning a sibling value)", name)
	}
	if got := tax.Values("X"); !reflect.DeepEqual(got, []string{"X:red", "Y:big"}) {
		t.Errorf("Values(X) = %v, want inferred value appended", got)
	}
	if tax.Inferred()["Y:big"] != "X" {
		t.Errorf("Inferred() = %v", tax.Inferred())
	}
}

func TestNewInferenceChainsThroughEarlierInferences(t *testing.T) {
	cats := model.Categories{{Name: "SHAPE", Values: []string{"round"}}}
	catalog := model.Catalog{Items: []model.Item{
		item("A", "round", "oval"),
		item("B", "oval", "egg"),
	}}

	tax := New(cats, catalog, DocumentOrder)

	if got := tax.Values("SHAPE"); !reflect.DeepEqual(got, []string{"round", "oval", "egg"}) {
		t.Fatalf("Values(SHAPE) = %v, want [round oval egg]", got)
	}
}

func TestNewInferenceFallsBackToLaterItems(t *testing.T) {
	cats := model.Categories{{Name: "COLOR", Values: []string{"red"}}}
	catalog := model.Catalog{Items: []model.Item{
		item("A", "shiny"),
		item("B", "shiny", "red"),
	}}

	tax := New(cats, catalog, DocumentOrder)

	if name, ok := tax.CategoryOf("shiny"); !ok || name != "COLOR" {
		t.Fatalf("CategoryOf(shiny) = %q, %v; want COLOR via item B", name, ok)
	}
}

func TestNewUnresolvedValues(t *testing.T) {
	cats := model.Categories{{Name: "COLOR", Values: []string{"red"}}}
	catalog := model.Catalog{Items: []model.Item{
		item("A", "red"),
		item("B", "orphan", "stray"),
	}}

	tax := New(cats, catalog, DocumentOrder)

	if got := tax.Unresolved(); !reflect.DeepEqual(got, []string{"orphan", "stray"}) {
		t.Fatalf("Unresolved() = %v, want [orphan stray]", got)
	}
	if _, ok := tax.CategoryOf("orphan"); ok {
		t.Error("unresolved value must not be owned")
	}
}

func TestNewOverlaps(t *testing.T) {
	cats := model.Categories{
		{Name: "X", Values: []string{"shared", "x"}},
		{Name: "Y", Values: []string{"shared", "y"}},
	}

	tax := New(cats, model.Catalog{}, DocumentOrder)

	if got := tax.Overlaps(); !reflect.DeepEqual(got, []string{"shared"}) {
		t.Fatalf("Overlaps() = %v", got)
	}
	if !tax.Contains("X", "shared") || !tax.Contains("Y", "shared") {
		t.Error("overlapping value must stay in both categories")
	}
	if name, _ := tax.CategoryOf("shared"); name != "X" {
		t.Errorf("CategoryOf(shared) = %q, want first listing category", name)
	}
}

func TestNewLexicalOrder(t *testing.T) {
	cats := model.Categories{{Name: "X", Values: []string{"pear", "apple"}}}
	catalog := model.Catalog{Items: []model.Item{item("A", "pear", "banana")}}

	tax := New(cats, catalog, LexicalOrder)

	if got := tax.Values("X"); !reflect.DeepEqual(got, []string{"apple", "banana", "pear"}) {
		t.Fatalf("Values(X) = %v, want sorted", got)
	}
}

func TestNewDoesNotMutateInputs(t *testing.T) {
	cats := model.Categories{{Name: "X", Values: []string{"b", "a"}}}
	catalog := model.Catalog{Items: []model.Item{item("A", "b", "c")}}

	New(cats, catalog, LexicalOrder)

	if !reflect.DeepEqual(cats[0].Values, []string{"b", "a"}) {
		t.Fatalf("category values mutated: %v", cats[0].Values)
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    Order
		wantErr bool
	}{
		{"", DocumentOrder, false},
		{"document", DocumentOrder, false},
		{"LEXICAL", LexicalOrder, false},
		{"random", DocumentOrder, true},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
