package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 200}
	tests := []struct {
		in   int32
		want int
	}{
		{0, 50},
		{-3, 50},
		{10, 10},
		{500, 200},
	}
	for _, tt := range tests {
		if got := ClampPageSize(tt.in, cfg); got != tt.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestSeqTokenRoundTrip(t *testing.T) {
	for _, seq := range []uint64{0, 1, 42, 1<<63 + 5} {
		got, err := DecodeSeqToken(EncodeSeqToken(seq))
		if err != nil {
			t.Fatalf("decode %d: %v", seq, err)
		}
		if got != seq {
			t.Fatalf("round trip = %d, want %d", got, seq)
		}
	}
}

func TestDecodeSeqTokenRejectsGarbage(t *testing.T) {
	if seq, err := DecodeSeqToken(""); err != nil || seq != 0 {
		t.Fatalf("empty token = %d, %v, want 0, nil", seq, err)
	}
	for _, token := range []string{"!!!", "c2VxOmFiYw", "b3RoZXI6MQ"} {
		if _, err := DecodeSeqToken(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}
