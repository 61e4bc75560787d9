package container

import (
	"encoding/json"
	"testing"

	"github.com/simonhull/vrmmeta/internal/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		kind    types.FormatErrorKind // 0 means success
	}{
		{"object", `{"asset":{"version":"2.0"}}`, 0},
		{"space padding", `{"asset":{}}   `, 0},
		{"utf-8 text", `{"meta":{"title":"アリシア"}}`, 0},
		{"empty payload", ``, types.InvalidJSON},
		{"syntax error", `{"asset":`, types.InvalidJSON},
		{"top-level array", `[1,2,3]`, types.InvalidJSON},
		{"top-level string", `"glTF"`, types.InvalidJSON},
		{"trailing data", `{"a":1} {"b":2}`, types.InvalidJSON},
		{"nul padding", "{\"a\":1}\x00\x00", types.InvalidJSON},
		{"invalid utf-8", "{\"title\":\"\xff\xfe\"}", types.InvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.payload), "test.vrm", 20)
			if tt.kind == 0 {
				if err != nil {
					t.Fatalf("Decode() error = %v", err)
				}
				if doc == nil {
					t.Fatal("Decode() returned nil document")
				}
				return
			}
			assertKind(t, err, tt.kind)
		})
	}
}

func TestDecode_InvalidUTF8Offset(t *testing.T) {
	payload := []byte("{\"title\":\"ab\xc3\"}")

	fe := assertKind(t, mustDecode(Decode(payload, "test.vrm", 20)), types.InvalidUTF8)
	if fe.Offset != 20+12 {
		t.Errorf("offset = %d, want %d", fe.Offset, 20+12)
	}
}

func TestDecode_InvalidJSONCarriesDiagnostic(t *testing.T) {
	fe := assertKind(t, mustDecode(Decode([]byte(`{"a":}`), "test.vrm", 20)), types.InvalidJSON)
	if fe.Err == nil {
		t.Fatal("expected the parser diagnostic to be attached")
	}
	if _, ok := fe.Err.(*json.SyntaxError); !ok {
		t.Errorf("expected *json.SyntaxError, got %T", fe.Err)
	}
}

func TestDecode_NumbersVerbatim(t *testing.T) {
	doc, err := Decode([]byte(`{"asset":{"version":"2.0"},"scale":1.50,"big":12345678901234567890}`), "test.vrm", 0)
	if err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(map[string]any{"scale": doc["scale"], "big": doc["big"]})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"big":12345678901234567890,"scale":1.50}` {
		t.Errorf("numbers not preserved: %s", out)
	}
}

func mustDecode(_ types.Document, err error) error {
	return err
}
