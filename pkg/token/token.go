// Package token converts coordinate lists to and from compact URL-safe share
// tokens. The current format is a protobuf-style packed signed-varint array;
// two older JSON-based formats remain decodable so previously issued share
// links keep working.
package token

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/HanzPo/gameoflife/pkg/life"
)

// cellsField is the wire-format key for the packed coordinate array:
// field number 1, length-delimited.
const cellsField = 0x0A

// Encode flattens the cells into (row0, col0, row1, col1, ...) and writes
// them as a packed zigzag-varint array under field 1, then URL-safe base64
// without padding.
func Encode(cells []life.Cell) string {
	payload := make([]byte, 0, len(cells)*4)
	for _, c := range cells {
		payload = binary.AppendVarint(payload, int64(c.Row))
		payload = binary.AppendVarint(payload, int64(c.Col))
	}
	buf := make([]byte, 0, len(payload)+binary.MaxVarintLen64+1)
	buf = append(buf, cellsField)
	buf = binary.AppendUvarint(buf, uint64(len(payload)))
	buf = append(buf, payload...)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// decoders are the supported token formats, newest first. Decode stops at the
// first one that parses; the older entries exist only for links issued before
// the packed format and must stay until a version marker replaces them.
var decoders = []func(string) ([]life.Cell, bool){
	decodePacked,
	decodeBase64JSON,
	decodePercentJSON,
}

// Decode turns a share token back into cells. A false result means no
// strategy could parse the token; callers treat that as "no cells".
func Decode(tok string) ([]life.Cell, bool) {
	for _, dec := range decoders {
		if cells, ok := dec(tok); ok {
			return cells, true
		}
	}
	return nil, false
}

// unbase64 decodes URL-safe base64, tolerating both padded and unpadded
// tokens.
func unbase64(tok string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(tok, "="))
}

func decodePacked(tok string) ([]life.Cell, bool) {
	raw, err := unbase64(tok)
	if err != nil {
		return nil, false
	}
	var flat []int64
	for len(raw) > 0 {
		if raw[0] != cellsField {
			return nil, false
		}
		raw = raw[1:]
		length, n := binary.Uvarint(raw)
		if n <= 0 || length > uint64(len(raw)-n) {
			return nil, false
		}
		payload := raw[n : n+int(length)]
		raw = raw[n+int(length):]
		for len(payload) > 0 {
			v, vn := binary.Varint(payload)
			if vn <= 0 {
				return nil, false
			}
			flat = append(flat, v)
			payload = payload[vn:]
		}
	}
	// An odd trailing value has no partner column and is dropped.
	cells := make([]life.Cell, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		cells = append(cells, life.Cell{Row: int(flat[i]), Col: int(flat[i+1])})
	}
	return cells, true
}

// document is the legacy JSON shape shared with stored seeds and exports.
type document struct {
	Cells [][2]int `json:"cells"`
}

func parseDocument(data []byte) ([]life.Cell, bool) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Cells == nil {
		return nil, false
	}
	cells := make([]life.Cell, len(doc.Cells))
	for i, pair := range doc.Cells {
		cells[i] = life.Cell{Row: pair[0], Col: pair[1]}
	}
	return cells, true
}

func decodeBase64JSON(tok string) ([]life.Cell, bool) {
	raw, err := unbase64(tok)
	if err != nil {
		return nil, false
	}
	return parseDocument(raw)
}

func decodePercentJSON(tok string) ([]life.Cell, bool) {
	unescaped, err := url.QueryUnescape(tok)
	if err != nil {
		return nil, false
	}
	return parseDocument([]byte(unescaped))
}
