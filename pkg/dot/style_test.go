package dot

import (
	"errors"
	"testing"
)

func TestStyleStrings(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleNone, ""},
		{StyleSolid, "solid"},
		{StyleDashed, "dashed"},
		{StyleDotted, "dotted"},
		{StyleBold, "bold"},
		{StyleInvisible, "invis"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("Style(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"", StyleNone},
		{"none", StyleNone},
		{"solid", StyleSolid},
		{"dashed", StyleDashed},
		{"dotted", StyleDotted},
		{"bold", StyleBold},
		{"invis", StyleInvisible},
		{"invisible", StyleInvisible},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if err != nil {
			t.Errorf("ParseStyle(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseStyle("wavy"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("ParseStyle(\"wavy\") error = %v, want ErrUnknownStyle", err)
	}
}

func TestParseShape(t *testing.T) {
	got, err := ParseShape("box")
	if err != nil || got != ShapeBox {
		t.Errorf("ParseShape(\"box\") = %v, %v", got, err)
	}
	if got, err := ParseShape(""); err != nil || got != ShapeDefault {
		t.Errorf("ParseShape(\"\") = %v, %v, want ShapeDefault", got, err)
	}
	if _, err := ParseShape("dodecahedron"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("ParseShape(\"dodecahedron\") error = %v, want ErrUnknownStyle", err)
	}
}

func TestKindTokens(t *testing.T) {
	if Directed.decl() != "digraph" || Directed.edgeOp() != "->" {
		t.Errorf("Directed tokens = %q, %q", Directed.decl(), Directed.edgeOp())
	}
	if Undirected.decl() != "graph" || Undirected.edgeOp() != "--" {
		t.Errorf("Undirected tokens = %q, %q", Undirected.decl(), Undirected.edgeOp())
	}
}
