package encoding

import (
	"strings"
	"testing"
)

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{
			name:  "simple object sorted keys",
			input: map[string]any{"z": 1, "a": 2, "m": 3},
			want:  `{"a":2,"m":3,"z":1}`,
		},
		{
			name:  "nested object sorted keys",
			input: map[string]any{"b": map[string]any{"d": 1, "c": 2}, "a": 3},
			want:  `{"a":3,"b":{"c":2,"d":1}}`,
		},
		{
			name:  "array preserved order",
			input: []any{3, 1, 2},
			want:  `[3,1,2]`,
		},
		{
			name:  "mixed types",
			input: map[string]any{"str": "a<b", "num": 42, "bool": true, "null": nil},
			want:  `{"bool":true,"null":null,"num":42,"str":"a<b"}`,
		},
		{
			name:  "large unsigned integers keep precision",
			input: map[string]any{"rng_state": uint64(18446744073709551557)},
			want:  `{"rng_state":18446744073709551557}`,
		},
		{
			name: "snapshot-like struct",
			input: struct {
				Seed        uint64   `json:"seed"`
				Disposition int      `json:"disposition"`
				Hand        []string `json:"hand"`
			}{Seed: 9007199254740993, Disposition: -12, Hand: []string{"b", "a"}},
			want: `{"disposition":-12,"hand":["b","a"],"seed":9007199254740993}`,
		},
		{
			name:    "unsupported value",
			input:   map[string]any{"ch": make(chan int)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalJSON(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanonicalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if string(got) != tt.want {
				t.Fatalf("CanonicalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanonicalizeJSONRejectsTrailingData(t *testing.T) {
	if _, err := CanonicalizeJSON([]byte(`{"a":1}{"b":2}`)); err == nil {
		t.Fatal("expected error for trailing data")
	}
	if _, err := CanonicalizeJSON([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestContentHashIgnoresKeyOrder(t *testing.T) {
	a, err := ContentHash(map[string]any{"x": 1, "y": []any{1, 2}})
	if err != nil {
		t.Fatalf("ContentHash() error = %v", err)
	}
	b, err := CanonicalizeJSON([]byte(`{ "y": [1, 2], "x": 1 }`))
	if err != nil {
		t.Fatalf("CanonicalizeJSON() error = %v", err)
	}
	if HashBytes(b) != a {
		t.Fatalf("hash mismatch: %s vs %s", HashBytes(b), a)
	}
	if len(a) != 64 || strings.Trim(a, "0123456789abcdef") != "" {
		t.Fatalf("hash = %q, want 64 lowercase hex chars", a)
	}

	c, err := ContentHash(map[string]any{"x": 2, "y": []any{1, 2}})
	if err != nil {
		t.Fatalf("ContentHash() error = %v", err)
	}
	if c == a {
		t.Fatal("different content produced the same hash")
	}
}
