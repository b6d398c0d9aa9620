package app

import (
	"flag"
	"testing"
)

func TestBindParsesOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-scale", "4", "-seed", "9", "-set", "size=64", "-set", "decay=legacy"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := cfg.FactoryConfig()
	want := map[string]string{"seed": "9", "cell_px": "4", "size": "64", "decay": "legacy"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("factory config %q = %q, want %q", k, got[k], v)
		}
	}
}

func TestOverridesRejectMalformed(t *testing.T) {
	o := Overrides{}
	if err := o.Set("novalue"); err == nil {
		t.Fatal("expected an error for a missing '='")
	}
	if err := o.Set("=3"); err == nil {
		t.Fatal("expected an error for an empty key")
	}
	if err := o.Set("seed=cell_px=2"); err != nil || o["seed"] != "cell_px=2" {
		t.Fatalf("value should keep everything after the first '=', got %q (%v)", o["seed"], err)
	}
}
