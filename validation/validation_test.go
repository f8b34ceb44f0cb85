package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Root      string   `yaml:"root" validate:"required"`
	Endpoints []string `yaml:"endpoints" validate:"required,min=1"`
}

func TestValidateOK(t *testing.T) {
	s := sample{Root: "https://api.example.com", Endpoints: []string{"users"}}
	if err := Validate(&s); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	err := Validate(&sample{})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "root") {
		t.Errorf("error %q missing root field", msg)
	}
	if !strings.Contains(msg, "endpoints") {
		t.Errorf("error %q missing endpoints field", msg)
	}
}
