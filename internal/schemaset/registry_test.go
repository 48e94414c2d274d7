package schemaset

import (
	"testing"
	"testing/fstest"
)

func TestNewRegistersAllSchemas(t *testing.T) {
	reg, err := New(Builtin())
	if err != nil {
		t.Fatalf("compile bundled schemas: %v", err)
	}
	for _, name := range Names {
		if _, ok := reg.Lookup(name); !ok {
			t.Fatalf("schema %s not registered", name)
		}
	}
	if _, ok := reg.Lookup("nope"); ok {
		t.Fatal("expected lookup miss for unknown schema")
	}
}

func TestNewFailsOnMissingDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"project.json": {Data: []byte(`{"type":"object"}`)},
	}
	if _, err := New(fsys); err == nil {
		t.Fatal("expected error when schema documents are missing")
	}
}

func TestBlockchainAddressFormat(t *testing.T) {
	reg, err := New(Builtin())
	if err != nil {
		t.Fatalf("compile bundled schemas: %v", err)
	}
	sch, _ := reg.Lookup("blockchain-address")

	valid := []string{
		"0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
		"4Nd1mBQtrMJVYVfKf2PJy9NZaZdRxCTTwAnd1mBQtrMJ",
	}
	for _, addr := range valid {
		if err := sch.Validate(addr); err != nil {
			t.Fatalf("expected %q to validate: %v", addr, err)
		}
	}

	invalid := []string{
		"0x1234",
		"not an address",
		"0xZZ9840a85d5aF5bf1D1762F925BDADdC4201F984",
	}
	for _, addr := range invalid {
		if err := sch.Validate(addr); err == nil {
			t.Fatalf("expected %q to fail format validation", addr)
		}
	}

	// Non-string values are rejected by the type keyword, not the format.
	if err := sch.Validate(float64(42)); err == nil {
		t.Fatal("expected non-string value to fail")
	}
}

func TestURLFormat(t *testing.T) {
	reg, err := New(Builtin())
	if err != nil {
		t.Fatalf("compile bundled schemas: %v", err)
	}
	sch, _ := reg.Lookup("url")

	if err := sch.Validate("https://example.com/project"); err != nil {
		t.Fatalf("expected absolute url to validate: %v", err)
	}
	if err := sch.Validate("not a url"); err == nil {
		t.Fatal("expected malformed url to fail")
	}
}
