package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddAttrDuplicate(t *testing.T) {
	n := &Node{ID: "root"}
	if err := n.AddAttr("Name", NewAttr("LSString", "a")); err != nil {
		t.Fatal(err)
	}
	err := n.AddAttr("Name", NewAttr("LSString", "b"))
	if !errors.Is(err, ErrStructure) {
		t.Errorf("duplicate attribute: got %v, want ErrStructure", err)
	}
}

func TestAttrGroupCollision(t *testing.T) {
	n := &Node{ID: "root"}
	if err := n.AddAttr("Mods", NewAttr("LSString", "a")); err != nil {
		t.Fatal(err)
	}
	err := n.AddChild("Mods", &Node{ID: "Mods"})
	if !errors.Is(err, ErrStructure) {
		t.Errorf("child under attribute id: got %v, want ErrStructure", err)
	}

	n = &Node{ID: "root"}
	if err := n.AddChild("Mods", &Node{ID: "Mods"}); err != nil {
		t.Fatal(err)
	}
	err = n.AddAttr("Mods", NewAttr("LSString", "a"))
	if !errors.Is(err, ErrStructure) {
		t.Errorf("attribute under group id: got %v, want ErrStructure", err)
	}
}

func TestGroupOrder(t *testing.T) {
	n := &Node{ID: "Mods"}
	for _, id := range []string{"a", "b", "c"} {
		child := &Node{ID: "Module"}
		if err := child.AddAttr("UUID", NewAttr("guid", id)); err != nil {
			t.Fatal(err)
		}
		if err := n.AddChild("Module", child); err != nil {
			t.Fatal(err)
		}
	}
	group := n.Group("Module")
	if len(group) != 3 {
		t.Fatalf("got %d children, want 3", len(group))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := *group[i].Attr("UUID").Value; got != want {
			t.Errorf("child %d UUID = %q, want %q", i, got, want)
		}
	}
}

func TestMemberOrderInterleaved(t *testing.T) {
	n := &Node{ID: "root"}
	n.AddAttr("First", NewAttr("LSString", "1"))
	n.AddChild("Kids", &Node{ID: "Kids"})
	n.AddAttr("Second", NewAttr("LSString", "2"))
	want := []string{"First", "Kids", "Second"}
	for i, m := range n.Members {
		if m.ID != want[i] {
			t.Errorf("member %d = %q, want %q", i, m.ID, want[i])
		}
	}
}

func TestAddRegionDuplicate(t *testing.T) {
	doc := &Document{}
	if err := doc.AddRegion("Config", &Node{ID: "root"}); err != nil {
		t.Fatal(err)
	}
	err := doc.AddRegion("Config", &Node{ID: "root"})
	if !errors.Is(err, ErrStructure) {
		t.Errorf("duplicate region: got %v, want ErrStructure", err)
	}
}

func TestClone(t *testing.T) {
	doc := &Document{Version: Version{4, 0, 9, 331}}
	root := &Node{ID: "root"}
	root.AddAttr("Name", NewAttr("LSString", "a").WithHandle("").WithVersion(2))
	child := &Node{ID: "Module"}
	child.AddAttr("UUID", DeclAttr("guid"))
	root.AddChild("Module", child)
	doc.AddRegion("Config", root)

	clone := doc.Clone()
	if !Equal(doc, clone) {
		t.Fatalf("clone differs:\n%s", cmp.Diff(doc, clone))
	}
	// deep: mutating the clone leaves the original alone
	*clone.Regions[0].Root.Attr("Name").Value = "b"
	clone.Regions[0].Root.Group("Module")[0].ID = "Other"
	if got := *doc.Regions[0].Root.Attr("Name").Value; got != "a" {
		t.Errorf("original value mutated to %q", got)
	}
	if got := doc.Regions[0].Root.Group("Module")[0].ID; got != "Module" {
		t.Errorf("original child id mutated to %q", got)
	}
}

func TestVisitOrder(t *testing.T) {
	doc := &Document{}
	root := &Node{ID: "root"}
	for _, id := range []string{"a", "b"} {
		root.AddChild("Module", &Node{ID: "Module", Members: []Member{
			{ID: "Name", Attr: NewAttr("LSString", id)},
		}})
	}
	doc.AddRegion("Config", root)
	var seen []string
	doc.Visit(func(region string, n *Node) error {
		name := n.ID
		if a := n.Attr("Name"); a != nil {
			name = *a.Value
		}
		seen = append(seen, region+"/"+name)
		return nil
	})
	want := []string{"Config/root", "Config/a", "Config/b"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}
