package canonicalize

import "testing"

func TestJCSSortsKeys(t *testing.T) {
	a, err := JCS(map[string]any{"b": 1, "a": 2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := JCS(map[string]any{"a": 2, "b": 1})
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatalf("expected map key order to not affect canonical bytes, got %q vs %q", a, b)
	}
}

func TestComputeArtifactHashDeterministic(t *testing.T) {
	data := []byte(`{"a":1}`)
	h1 := ComputeArtifactHash(data)
	h2 := ComputeArtifactHash(data)
	if h1 != h2 {
		t.Fatalf("expected deterministic hash, got %s vs %s", h1, h2)
	}
	if h1[:7] != "sha256:" {
		t.Fatalf("expected sha256: prefix, got %s", h1)
	}
}

func TestCanonicalHash(t *testing.T) {
	h, err := CanonicalHash(struct {
		Name string `json:"name"`
	}{Name: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if h == "" {
		t.Fatal("expected non-empty hash")
	}
}
