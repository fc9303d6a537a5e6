package dot

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// plainGraph implements only the required capabilities: topology,
// identifiers, kind. Nodes are small ints, edges are index pairs.
type plainGraph struct {
	id    ID
	kind  Kind
	nodes []int
	edges [][2]int
}

func (g *plainGraph) Nodes() []int        { return g.nodes }
func (g *plainGraph) Edges() [][2]int     { return g.edges }
func (g *plainGraph) Source(e [2]int) int { return e[0] }
func (g *plainGraph) Target(e [2]int) int { return e[1] }
func (g *plainGraph) GraphID() ID         { return g.id }
func (g *plainGraph) Kind() Kind          { return g.kind }

func (g *plainGraph) NodeID(n int) ID {
	return MustID(fmt.Sprintf("N%d", n))
}

func example1() *plainGraph {
	return &plainGraph{
		id:    MustID("example1"),
		nodes: []int{0, 1, 2, 3, 4},
		edges: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 4}},
	}
}

const example1Golden = `digraph example1 {
  N0[label="N0"];
  N1[label="N1"];
  N2[label="N2"];
  N3[label="N3"];
  N4[label="N4"];
  N0 -> N1[label=""];
  N0 -> N2[label=""];
  N1 -> N3[label=""];
  N2 -> N3[label=""];
  N3 -> N4[label=""];
  N4 -> N4[label=""];
}
`

func TestRenderGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, example1()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if buf.String() != example1Golden {
		t.Errorf("Render() output:\n%s\nwant:\n%s", buf.String(), example1Golden)
	}
}

func TestRenderDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	g := example1()
	if err := Render(&a, g); err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	if err := Render(&b, g); err != nil {
		t.Fatalf("second Render() error: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two renders of the same graph differ")
	}
}

func TestRenderPreservesCallerOrder(t *testing.T) {
	g := &plainGraph{id: MustID("ordered"), nodes: []int{2, 0, 1}}

	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	i2, i0, i1 := strings.Index(out, "N2"), strings.Index(out, "N0"), strings.Index(out, "N1")
	if !(i2 < i0 && i0 < i1) {
		t.Errorf("node statements not in caller order:\n%s", out)
	}
}

func TestRenderUndirected(t *testing.T) {
	g := &plainGraph{
		id:    MustID("pair"),
		kind:  Undirected,
		nodes: []int{0, 1},
		edges: [][2]int{{0, 1}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "graph pair {") {
		t.Errorf("undirected header wrong:\n%s", out)
	}
	if !strings.Contains(out, "N0 -- N1") {
		t.Errorf("undirected connector missing:\n%s", out)
	}
	if strings.Contains(out, "->") {
		t.Errorf("undirected output contains directed connector:\n%s", out)
	}
}

// fullGraph layers every optional capability on top of plainGraph.
type fullGraph struct {
	plainGraph
	shape      Shape
	nodeLabels map[int]Label
	nodeStyles map[int]Style
	edgeLabels map[[2]int]Label
	edgeStyles map[[2]int]Style
	start, end Arrow
}

func (g *fullGraph) NodeShape() Shape { return g.shape }

func (g *fullGraph) NodeLabel(n int) Label {
	if l, ok := g.nodeLabels[n]; ok {
		return l
	}
	return Text(g.NodeID(n).String())
}

func (g *fullGraph) EdgeLabel(e [2]int) Label { return g.edgeLabels[e] }
func (g *fullGraph) NodeStyle(n int) Style    { return g.nodeStyles[n] }
func (g *fullGraph) EdgeStyle(e [2]int) Style { return g.edgeStyles[e] }

func (g *fullGraph) EdgeArrows(e [2]int) (Arrow, Arrow) { return g.start, g.end }

func TestRenderNodeShapeStatement(t *testing.T) {
	g := &fullGraph{plainGraph: *example1(), shape: ShapeBox}

	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[1] != "  node [shape=box];" {
		t.Errorf("shape statement = %q, want before all node statements", lines[1])
	}
}

func TestRenderAttributes(t *testing.T) {
	g := &fullGraph{
		plainGraph: plainGraph{
			id:    MustID("attrs"),
			nodes: []int{0, 1},
			edges: [][2]int{{0, 1}},
		},
		nodeLabels: map[int]Label{0: Text(`say "hi"`), 1: HTML("<b>one</b>")},
		nodeStyles: map[int]Style{0: StyleDashed},
		edgeLabels: map[[2]int]Label{{0, 1}: Literal(`pre\nescaped`)},
		edgeStyles: map[[2]int]Style{{0, 1}: StyleBold},
		end:        ArrowDiamond,
	}

	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`N0[label="say \"hi\"", style=dashed];`,
		`N1[label=<<b>one</b>>];`,
		`N0 -> N1[label="pre\nescaped", style=bold, arrowhead=diamond];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStartArrowSetsDirBoth(t *testing.T) {
	g := &fullGraph{
		plainGraph: plainGraph{id: MustID("arrows"), nodes: []int{0, 1}, edges: [][2]int{{0, 1}}},
		start:      ArrowDot,
	}

	var buf bytes.Buffer
	if err := Render(&buf, g); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "arrowtail=dot, dir=both") {
		t.Errorf("start arrow should emit arrowtail and dir=both:\n%s", buf.String())
	}
}

func TestRenderWithSuppression(t *testing.T) {
	g := example1()

	var buf bytes.Buffer
	err := RenderWith(&buf, g, Options{NoNodeLabels: true, NoEdgeLabels: true})
	if err != nil {
		t.Fatalf("RenderWith() error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "label=") {
		t.Errorf("suppressed labels still present:\n%s", out)
	}
	if !strings.Contains(out, "  N0;\n") {
		t.Errorf("bare node statement missing:\n%s", out)
	}
	if !strings.Contains(out, "  N4 -> N4;\n") {
		t.Errorf("bare edge statement missing:\n%s", out)
	}
}

// zeroIDGraph surfaces an invalid identifier for one node.
type zeroIDGraph struct {
	plainGraph
}

func (g *zeroIDGraph) NodeID(n int) ID {
	if n == 1 {
		return ID{}
	}
	return g.plainGraph.NodeID(n)
}

func TestRenderInvalidGraphID(t *testing.T) {
	g := &plainGraph{nodes: []int{0}}

	var buf bytes.Buffer
	err := Render(&buf, g)
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("Render() error = %v, want ErrInvalidID", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no output should be written before the header id check, got %q", buf.String())
	}
}

func TestRenderInvalidNodeIDAborts(t *testing.T) {
	g := &zeroIDGraph{plainGraph{id: MustID("bad"), nodes: []int{0, 1, 2}}}

	var buf bytes.Buffer
	err := Render(&buf, g)
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("Render() error = %v, want ErrInvalidID", err)
	}
	out := buf.String()
	if !strings.Contains(out, "N0") {
		t.Errorf("statements before the bad node should be committed:\n%s", out)
	}
	if strings.Contains(out, "N1") || strings.Contains(out, "N2") {
		t.Errorf("no output should be committed for or after the bad node:\n%s", out)
	}
}

// failAfter rejects writes once n bytes have been accepted.
type failAfter struct {
	n       int
	written int
}

var errSinkClosed = errors.New("sink closed")

func (f *failAfter) Write(p []byte) (int, error) {
	if f.written+len(p) > f.n {
		return 0, errSinkClosed
	}
	f.written += len(p)
	return len(p), nil
}

func TestRenderWriteFailureAborts(t *testing.T) {
	g := example1()

	if err := Render(&failAfter{n: 30}, g); !errors.Is(err, errSinkClosed) {
		t.Errorf("Render() error = %v, want sink error surfaced unchanged", err)
	}
	if err := Render(&failAfter{n: 0}, g); !errors.Is(err, errSinkClosed) {
		t.Errorf("Render() with dead sink error = %v, want sink error", err)
	}
}
