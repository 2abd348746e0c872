package model

import (
	"errors"
	"testing"
)

func TestParseTagType(t *testing.T) {
	tests := []struct {
		input   string
		want    TagType
		wantErr bool
	}{
		{input: "primary", want: TagTypePrimary},
		{input: "Secondary", want: TagTypeSecondary},
		{input: " primary ", want: TagTypePrimary},
		{input: "tertiary", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTagType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTagType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrInvalidTagType) {
				t.Errorf("ParseTagType(%q) error = %v, want ErrInvalidTagType", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("ParseTagType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateTagName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "work"},
		{name: "with spaces", input: "book club"},
		{name: "unicode", input: "仕事"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "comma", input: "a,b", wantErr: true},
		{name: "bracket", input: "a]", wantErr: true},
		{name: "newline", input: "a\nb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTagName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTagName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTagSelection(t *testing.T) {
	if !(TagSelection{}).IsEmpty() {
		t.Error("empty selection IsEmpty() = false, want true")
	}

	sel := TagSelection{Secondary: "idea"}
	if sel.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}

	got := sel.Values()
	if len(got) != 1 || got[0] != "idea" {
		t.Errorf("Values() = %v, want [idea]", got)
	}

	both := TagSelection{Primary: "work", Secondary: "idea"}.Values()
	if len(both) != 2 || both[0] != "work" || both[1] != "idea" {
		t.Errorf("Values() = %v, want [work idea]", both)
	}
}
