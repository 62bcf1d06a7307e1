package token

import (
	"encoding/base64"
	"encoding/binary"
	"net/url"
	"testing"

	"github.com/HanzPo/gameoflife/pkg/life"
)

func assertCells(t *testing.T, got []life.Cell, want []life.Cell) {
	t.Helper()
	gotSet := life.NewSet(got...)
	if len(gotSet) != len(life.NewSet(want...)) {
		t.Fatalf("decoded %d distinct cells, expected %d", len(gotSet), len(want))
	}
	for _, c := range want {
		if !gotSet.Has(c) {
			t.Fatalf("cell (%d,%d) missing from decode", c.Row, c.Col)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]life.Cell{
		{},
		{{Row: 0, Col: 0}},
		{{Row: -1, Col: 1}, {Row: 300, Col: -4000}, {Row: 0, Col: -1}},
		{{Row: 1 << 30, Col: -(1 << 30)}, {Row: -7, Col: 7}},
	}
	for _, cells := range cases {
		tok := Encode(cells)
		got, ok := Decode(tok)
		if !ok {
			t.Fatalf("round trip failed for %v (token %q)", cells, tok)
		}
		assertCells(t, got, cells)
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	cells := []life.Cell{{Row: -123, Col: 456}, {Row: 99999, Col: -1}}
	tok := Encode(cells)
	if escaped := url.QueryEscape(tok); escaped != tok {
		t.Fatalf("token %q changes under query escaping (%q)", tok, escaped)
	}
}

func TestDecodeLegacyBase64JSON(t *testing.T) {
	legacy := base64.RawURLEncoding.EncodeToString([]byte(`{"cells":[[1,2],[-3,4]]}`))
	got, ok := Decode(legacy)
	if !ok {
		t.Fatalf("legacy base64 JSON token %q did not decode", legacy)
	}
	assertCells(t, got, []life.Cell{{Row: 1, Col: 2}, {Row: -3, Col: 4}})
}

func TestDecodeLegacyPercentJSON(t *testing.T) {
	legacy := url.QueryEscape(`{"cells":[[0,0],[5,-6]]}`)
	got, ok := Decode(legacy)
	if !ok {
		t.Fatalf("legacy percent-encoded token %q did not decode", legacy)
	}
	assertCells(t, got, []life.Cell{{Row: 0, Col: 0}, {Row: 5, Col: -6}})
}

func TestDecodePaddedToken(t *testing.T) {
	cells := []life.Cell{{Row: 8, Col: -9}}
	padded := Encode(cells)
	for len(padded)%4 != 0 {
		padded += "="
	}
	got, ok := Decode(padded)
	if !ok {
		t.Fatalf("padded token %q did not decode", padded)
	}
	assertCells(t, got, cells)
}

func TestDecodeDropsOddTrailingValue(t *testing.T) {
	payload := binary.AppendVarint(nil, 4)
	payload = binary.AppendVarint(payload, -5)
	payload = binary.AppendVarint(payload, 42) // unpaired row
	buf := append([]byte{cellsField}, byte(len(payload)))
	buf = append(buf, payload...)

	got, ok := Decode(base64.RawURLEncoding.EncodeToString(buf))
	if !ok {
		t.Fatal("token with odd value count did not decode")
	}
	assertCells(t, got, []life.Cell{{Row: 4, Col: -5}})
}

func TestDecodeFailure(t *testing.T) {
	for _, tok := range []string{
		"!!!not base64!!!",
		base64.RawURLEncoding.EncodeToString([]byte{0xFF, 0x02, 0x01}),
		base64.RawURLEncoding.EncodeToString([]byte(`{"not-cells":[]}`)),
		"%zz",
	} {
		if cells, ok := Decode(tok); ok {
			t.Fatalf("token %q decoded unexpectedly to %v", tok, cells)
		}
	}
}
