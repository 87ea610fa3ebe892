package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lsforge/go-lskit/format"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/lsj"
	"github.com/lsforge/go-lskit/lsx"
)

const configLSX = `<?xml version="1.0" encoding="UTF-8"?>
<save>
  <version major="4" minor="0" revision="9" build="331"/>
  <region id="Config">
    <node id="Config">
      <attribute id="Name" type="LSString" value="Test"/>
    </node>
  </region>
</save>
`

func TestXMLToJSON(t *testing.T) {
	got, err := XMLToJSON(configLSX)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"version": "4.0.9.331"`,
		`"Config": {`,
		`"type": "LSString"`,
		`"value": "Test"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %s:\n%s", want, got)
		}
	}
	if strings.Contains(got, `"node"`) || strings.Contains(got, `"attribute"`) {
		t.Errorf("element names leaked into output:\n%s", got)
	}
}

// Converting there and back reproduces the attribute set when the root
// node id matches its region id, which is all the LSJ shape can record.
func TestThereAndBackAgain(t *testing.T) {
	asJSON, err := XMLToJSON(configLSX)
	if err != nil {
		t.Fatal(err)
	}
	asXML, err := JSONToXML(asJSON)
	if err != nil {
		t.Fatal(err)
	}
	if asXML != configLSX {
		t.Errorf("round trip (-want +got):\n%s", cmp.Diff(configLSX, asXML))
	}
}

const modsLSX = `<?xml version="1.0" encoding="UTF-8"?>
<save>
  <version major="4" minor="0" revision="9" build="331"/>
  <region id="ModuleSettings">
    <node id="ModuleSettings">
      <attribute id="Folder" type="FixedString" value="Main"/>
      <children>
        <node id="Mods">
          <children>
            <node id="Module">
              <attribute id="Name" type="LSString" value="ModA"/>
            </node>
            <node id="Module">
              <attribute id="Name" type="LSString" value="ModB"/>
            </node>
            <node id="Module">
              <attribute id="Name" type="LSString" value="ModC"/>
            </node>
          </children>
        </node>
      </children>
    </node>
  </region>
</save>
`

func TestThereAndBackWithChildren(t *testing.T) {
	asJSON, err := XMLToJSON(modsLSX)
	if err != nil {
		t.Fatal(err)
	}
	asXML, err := JSONToXML(asJSON)
	if err != nil {
		t.Fatal(err)
	}
	if asXML != modsLSX {
		t.Errorf("round trip (-want +got):\n%s", cmp.Diff(modsLSX, asXML))
	}
	direct, err := lsx.Decode([]byte(modsLSX))
	if err != nil {
		t.Fatal(err)
	}
	again, err := lsx.Decode([]byte(asXML))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(direct, again) {
		t.Errorf("converted document differs:\n%s", cmp.Diff(direct, again))
	}
}

func TestConvertPreservesSpelling(t *testing.T) {
	in := `<save><region id="R"><node id="R">` +
		`<attribute id="Rate" type="double" value="3.0"/>` +
		`<attribute id="Count" type="int32" value="42"/>` +
		`</node></region></save>`
	asJSON, err := XMLToJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(asJSON, `"value": 3.0`) {
		t.Errorf("float spelling lost:\n%s", asJSON)
	}
	asXML, err := JSONToXML(asJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(asXML, `value="3.0"`) || !strings.Contains(asXML, `value="42"`) {
		t.Errorf("value spelling lost:\n%s", asXML)
	}
}

func TestDecodeEncodeEquivalence(t *testing.T) {
	doc, err := Decode([]byte(configLSX), format.LSXFormat)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := lsx.Decode([]byte(configLSX))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc, direct) {
		t.Errorf("dispatch disagrees with lsx.Decode:\n%s", cmp.Diff(direct, doc))
	}
	out, err := Encode(doc, format.LSJFormat)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lsj.Decode(out); err != nil {
		t.Errorf("encoded LSJ does not decode: %v", err)
	}
}

func TestBinaryRefused(t *testing.T) {
	if _, err := Decode([]byte("LSOF\x00\x00"), format.LSFFormat); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("decode: %v", err)
	}
	if _, err := Encode(&ir.Document{Version: ir.DefaultVersion()}, format.LSFFormat); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("encode: %v", err)
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want format.Format
		e    error
	}{
		{"lsx", "<save></save>", format.LSXFormat, nil},
		{"lsx prolog", `<?xml version="1.0"?><save/>`, format.LSXFormat, nil},
		{"lsx bom", "\xef\xbb\xbf<save/>", format.LSXFormat, nil},
		{"lsx leading ws", "\n\t <save/>", format.LSXFormat, nil},
		{"lsj", `{"save": {}}`, format.LSJFormat, nil},
		{"lsf magic", "LSOF\x00\x01\x02", format.LSFFormat, nil},
		{"empty", "", 0, format.ErrBadFormat},
		{"only ws", " \n", 0, format.ErrBadFormat},
		{"garbage", "hello", 0, format.ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sniff([]byte(tt.in))
			if tt.e != nil {
				if !errors.Is(err, tt.e) {
					t.Fatalf("got %v, want %v", err, tt.e)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
