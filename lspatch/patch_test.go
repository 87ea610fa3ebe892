package lspatch

import (
	"errors"
	"testing"

	"github.com/lsforge/go-lskit/ir"
)

func testDoc(t *testing.T) *ir.Document {
	t.Helper()
	doc := &ir.Document{Version: ir.DefaultVersion()}
	root := &ir.Node{ID: "Config"}
	if err := root.AddAttr("Name", ir.NewAttr("LSString", "Test")); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddRegion("Config", root); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestReplaceValue(t *testing.T) {
	doc := testDoc(t)
	patch := []byte(`[{"op": "replace", "path": "/save/regions/Config/Name/value", "value": "Patched"}]`)
	out, err := Apply(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	a := out.Regions[0].Root.Attr("Name")
	if a == nil || a.Value == nil || *a.Value != "Patched" {
		t.Errorf("Name = %+v", a)
	}
	// the input is untouched
	if orig := doc.Regions[0].Root.Attr("Name"); *orig.Value != "Test" {
		t.Errorf("input mutated: %q", *orig.Value)
	}
}

func TestAddAttribute(t *testing.T) {
	doc := testDoc(t)
	patch := []byte(`[{"op": "add", "path": "/save/regions/Config/Enabled", "value": {"type": "bool", "value": true}}]`)
	out, err := Apply(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	a := out.Regions[0].Root.Attr("Enabled")
	if a == nil || a.Type != "bool" || a.Value == nil || *a.Value != "True" {
		t.Errorf("Enabled = %+v", a)
	}
}

func TestRemoveAttribute(t *testing.T) {
	doc := testDoc(t)
	patch := []byte(`[{"op": "remove", "path": "/save/regions/Config/Name"}]`)
	out, err := Apply(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if out.Regions[0].Root.Attr("Name") != nil {
		t.Error("Name survived removal")
	}
}

func TestBadPatch(t *testing.T) {
	if _, err := Apply(testDoc(t), []byte(`{not json`)); !errors.Is(err, ir.ErrParse) {
		t.Errorf("got %v, want %v", err, ir.ErrParse)
	}
}

func TestMissingPath(t *testing.T) {
	patch := []byte(`[{"op": "replace", "path": "/save/regions/Nope/Name/value", "value": "x"}]`)
	if _, err := Apply(testDoc(t), patch); err == nil {
		t.Error("patching a missing path succeeded")
	}
}
