package config

import "testing"

func TestSchemaRegistry_BuiltIn(t *testing.T) {
	sr := NewSchemaRegistry()

	if _, ok := sr.GetSchema("config"); !ok {
		t.Fatal("Expected the config schema")
	}
	if _, ok := sr.GetSchema("resource"); ok {
		t.Error("Expected no resource schema")
	}
}

func TestSchemaRegistry_ValidateAgainstSchema(t *testing.T) {
	sr := NewSchemaRegistry()

	if err := sr.ValidateAgainstSchema("config", Default()); err != nil {
		t.Fatalf("Expected defaults to match the schema, got: %v", err)
	}

	cfg := Default()
	cfg.Simulation.Strategy = "shake"
	if err := sr.ValidateAgainstSchema("config", cfg); err == nil {
		t.Error("Expected an unknown strategy to be rejected")
	}

	cfg = Default()
	cfg.Telemetry.Metrics.Path = "metrics"
	if err := sr.ValidateAgainstSchema("config", cfg); err == nil {
		t.Error("Expected a relative metrics path to be rejected")
	}

	if err := sr.ValidateAgainstSchema("missing", cfg); err == nil {
		t.Error("Expected an unknown schema to be an error")
	}
}

func TestSchemaRegistry_RegisterSchema(t *testing.T) {
	sr := NewSchemaRegistry()

	if err := sr.RegisterSchema("grid", "#Grid", `#Grid: {size: int & >0}`); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := sr.ValidateAgainstSchema("grid", map[string]int{"size": 3}); err != nil {
		t.Errorf("Expected size 3 to validate, got: %v", err)
	}
	if err := sr.ValidateAgainstSchema("grid", map[string]int{"size": 0}); err == nil {
		t.Error("Expected size 0 to be rejected")
	}

	if err := sr.RegisterSchema("bad", "#Bad", `#Bad: {`); err == nil {
		t.Error("Expected a compile error")
	}
	if err := sr.RegisterSchema("absent", "#Absent", `#Other: {}`); err == nil {
		t.Error("Expected a missing definition error")
	}
}
