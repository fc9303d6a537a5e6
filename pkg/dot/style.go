package dot

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned by [ParseStyle] and [ParseShape] for strings
// outside the closed sets.
var ErrUnknownStyle = errors.New("unknown style")

// Style is a presentation hint for a node or edge. [StyleNone] is the
// default and causes the style attribute to be omitted; omitting it is
// equivalent to emitting it as far as Graphviz is concerned.
type Style int

// The closed set of styles. The spellings follow Graphviz, where
// "invisible" is spelled invis.
const (
	StyleNone Style = iota
	StyleSolid
	StyleDashed
	StyleDotted
	StyleBold
	StyleInvisible
)

var styleNames = [...]string{
	StyleNone:      "",
	StyleSolid:     "solid",
	StyleDashed:    "dashed",
	StyleDotted:    "dotted",
	StyleBold:      "bold",
	StyleInvisible: "invis",
}

// String returns the Graphviz spelling, or "" for [StyleNone].
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return ""
	}
	return styleNames[s]
}

// ParseStyle maps a config or CLI string to a Style. The empty string and
// "none" both parse to [StyleNone]; "invisible" is accepted alongside the
// Graphviz spelling "invis".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "none":
		return StyleNone, nil
	case "solid":
		return StyleSolid, nil
	case "dashed":
		return StyleDashed, nil
	case "dotted":
		return StyleDotted, nil
	case "bold":
		return StyleBold, nil
	case "invis", "invisible":
		return StyleInvisible, nil
	}
	return StyleNone, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Shape is the optional global default node shape. [ShapeDefault] emits no
// node-attribute statement, leaving the choice to the consuming tool.
type Shape int

// The supported node shapes.
const (
	ShapeDefault Shape = iota
	ShapeBox
	ShapeEllipse
	ShapeCircle
	ShapeDiamond
	ShapePoint
	ShapePlaintext
)

var shapeNames = [...]string{
	ShapeDefault:   "",
	ShapeBox:       "box",
	ShapeEllipse:   "ellipse",
	ShapeCircle:    "circle",
	ShapeDiamond:   "diamond",
	ShapePoint:     "point",
	ShapePlaintext: "plaintext",
}

// String returns the Graphviz spelling, or "" for [ShapeDefault].
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return ""
	}
	return shapeNames[s]
}

// ParseShape maps a config or CLI string to a Shape. The empty string
// parses to [ShapeDefault].
func ParseShape(s string) (Shape, error) {
	for i, name := range shapeNames {
		if s == name {
			return Shape(i), nil
		}
	}
	return ShapeDefault, fmt.Errorf("%w: shape %q", ErrUnknownStyle, s)
}

// Arrow is an arrowhead specification for one end of an edge.
// [ArrowDefault] emits nothing, meaning the consuming tool's default arrow.
type Arrow int

// The supported arrowheads.
const (
	ArrowDefault Arrow = iota
	ArrowNone
	ArrowNormal
	ArrowDot
	ArrowDiamond
	ArrowVee
)

var arrowNames = [...]string{
	ArrowDefault: "",
	ArrowNone:    "none",
	ArrowNormal:  "normal",
	ArrowDot:     "dot",
	ArrowDiamond: "diamond",
	ArrowVee:     "vee",
}

// String returns the Graphviz spelling, or "" for [ArrowDefault].
func (a Arrow) String() string {
	if a < 0 || int(a) >= len(arrowNames) {
		return ""
	}
	return arrowNames[a]
}

// Kind selects between a directed and an undirected document. It controls
// both the header token (digraph vs graph) and the edge connector
// (-> vs --).
type Kind int

const (
	// Directed emits a digraph with -> connectors.
	Directed Kind = iota
	// Undirected emits a graph with -- connectors.
	Undirected
)

// decl returns the header token for the kind.
func (k Kind) decl() string {
	if k == Undirected {
		return "graph"
	}
	return "digraph"
}

// edgeOp returns the connector token for the kind.
func (k Kind) edgeOp() string {
	if k == Undirected {
		return "--"
	}
	return "->"
}
