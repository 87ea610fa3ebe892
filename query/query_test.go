package query

import (
	"testing"

	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/lsx"
)

const modsSample = `<save>
  <version major="4" minor="0" revision="9" build="331"/>
  <region id="ModuleSettings">
    <node id="root">
      <children>
        <node id="Mods">
          <children>
            <node id="Module">
              <attribute id="Name" type="LSString" value="Alpha"/>
              <attribute id="Priority" type="int32" value="1"/>
            </node>
            <node id="Module">
              <attribute id="Name" type="LSString" value="Beta"/>
              <attribute id="Priority" type="int32" value="5"/>
            </node>
            <node id="Module">
              <attribute id="Name" type="LSString" value="Gamma"/>
            </node>
          </children>
        </node>
      </children>
    </node>
  </region>
</save>
`

func modsDoc(t *testing.T) *ir.Document {
	t.Helper()
	doc, err := lsx.Decode([]byte(modsSample))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRun(t *testing.T) {
	doc := modsDoc(t)
	tests := []struct {
		name  string
		src   string
		names []string
	}{
		{"by id", `id == "Module"`, []string{"Alpha", "Beta", "Gamma"}},
		{"attr compare", `has("Priority") && attrs.Priority > 2`, []string{"Beta"}},
		{"attr func", `attr("Name") == "Gamma"`, []string{"Gamma"}},
		{"has", `id == "Module" && !has("Priority")`, []string{"Gamma"}},
		{"region", `region == "ModuleSettings" && has("Name")`, []string{"Alpha", "Beta", "Gamma"}},
		{"none", `id == "NoSuch"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			matches, err := q.Run(doc)
			if err != nil {
				t.Fatal(err)
			}
			var names []string
			for _, m := range matches {
				if a := m.Node.Attr("Name"); a != nil && a.Value != nil {
					names = append(names, *a.Value)
				} else {
					names = append(names, m.Node.ID)
				}
			}
			if len(names) != len(tt.names) {
				t.Fatalf("matched %v, want %v", names, tt.names)
			}
			for i := range names {
				if names[i] != tt.names[i] {
					t.Errorf("match %d = %q, want %q", i, names[i], tt.names[i])
				}
			}
		})
	}
}

func TestDocumentOrder(t *testing.T) {
	doc := modsDoc(t)
	q, err := Compile(`true`)
	if err != nil {
		t.Fatal(err)
	}
	matches, err := q.Run(doc)
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, m := range matches {
		ids = append(ids, m.Node.ID)
	}
	want := []string{"root", "Mods", "Module", "Module", "Module"}
	if len(ids) != len(want) {
		t.Fatalf("visited %v, want %v", ids, want)
	}
	for i := range ids {
		if ids[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`id ==`); err == nil {
		t.Error("bad expression compiled")
	}
}

func TestNonBoolResult(t *testing.T) {
	q, err := Compile(`id`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.Run(modsDoc(t)); err == nil {
		t.Error("string-valued query ran")
	}
}
