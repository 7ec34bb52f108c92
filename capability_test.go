package llmcatalog

import "testing"

func TestCapability_Has(t *testing.T) {
	caps := ModalityTextIn | ModalityTextOut | CapPricing

	if !caps.Has(ModalityTextIn) {
		t.Error("Expected to have ModalityTextIn")
	}
	if !caps.Has(CapPricing) {
		t.Error("Expected to have CapPricing")
	}
	if caps.Has(ModalityImageIn) {
		t.Error("Expected NOT to have ModalityImageIn")
	}

	// Test multiple at once
	if !caps.Has(ModalityTextIn | ModalityTextOut) {
		t.Error("Expected to have both text in and out")
	}
}

func TestCapability_String(t *testing.T) {
	if got := (ModalityTextIn | ModalityImageIn).String(); got != "text-in|image-in" {
		t.Errorf("Unexpected %q", got)
	}
	if got := Capability(0).String(); got != "none" {
		t.Errorf("Unexpected %q", got)
	}
}
