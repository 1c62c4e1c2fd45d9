package errors

import "testing"

func TestNewCode(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"table.missing_format_version", false},
		{"common.internal", false},
		{"a.b", false},
		{"NoDots", true},
		{"UPPER.case", true},
		{"table.", true},
		{".name", true},
		{"too.many.dots", true},
		{"", true},
	}

	for _, tt := range tests {
		code, err := NewCode(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewCode(%q): expected error, got %v", tt.input, code)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewCode(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if code.String() != tt.input {
			t.Errorf("NewCode(%q): got %q", tt.input, code.String())
		}
	}
}

func TestMustNewCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustNewCode to panic on invalid code")
		}
	}()
	MustNewCode("not-a-valid-code")
}

func TestCodeParts(t *testing.T) {
	code := MustNewCode("table.dangling_schema_reference")

	if code.Package() != "table" {
		t.Errorf("Expected package 'table', got '%s'", code.Package())
	}

	if code.Name() != "dangling_schema_reference" {
		t.Errorf("Expected name 'dangling_schema_reference', got '%s'", code.Name())
	}

	if !code.IsValid() {
		t.Error("Expected code to be valid")
	}

	if !code.Equals(MustNewCode("table.dangling_schema_reference")) {
		t.Error("Expected equal codes to compare equal")
	}

	if code.Equals(MustNewCode("table.dangling_sort_order_reference")) {
		t.Error("Expected different codes to compare unequal")
	}
}
