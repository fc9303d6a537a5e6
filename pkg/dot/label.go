package dot

import "strings"

// escapeExempt lists the letters that keep a preceding backslash intact:
// \n, \l, and \r are Graphviz escString line-break and justification
// directives and must survive escaping when present in raw text.
const escapeExempt = "nlr"

type labelKind int

const (
	labelRaw labelKind = iota
	labelEscaped
	labelHTML
)

// Label is display text for a node or edge. It is a closed three-case
// variant; the case fixes the emission strategy and cases never reinterpret
// each other's content:
//
//   - [Text]: raw text, escaped at render time.
//   - [Literal]: text the caller asserts is already escaped, emitted
//     verbatim between quotes.
//   - [HTML]: markup emitted verbatim between angle brackets, never
//     quote-escaped.
//
// The zero value is the empty raw label and renders as label="".
type Label struct {
	kind labelKind
	text string
}

// Text returns a raw label. Quotes and lone backslashes in s are escaped
// when the label is emitted; existing \n, \l, and \r directives pass
// through unchanged.
func Text(s string) Label { return Label{kind: labelRaw, text: s} }

// Literal returns a pre-escaped label. The content is emitted between
// quotes exactly as given; the caller is trusted to have escaped it
// correctly and the engine does not re-validate. Composing already-escaped
// fragments through [Text] would corrupt them, which is why this case
// exists.
func Literal(s string) Label { return Label{kind: labelEscaped, text: s} }

// HTML returns a markup label. The content is emitted between angle
// brackets with no transformation; quote-escaping would break tag syntax,
// so none is applied. The caller is responsible for well-formed markup.
func HTML(s string) Label { return Label{kind: labelHTML, text: s} }

// Escaped returns the label text ready to be placed inside its delimiter
// pair. Raw text has the escaping algorithm applied; the other two cases
// pass through untouched.
func (l Label) Escaped() string {
	if l.kind != labelRaw {
		return l.text
	}
	return escapeString(l.text)
}

// String returns the delimited form as it appears in the document: quoted
// for raw and pre-escaped labels, angle-bracketed for markup.
func (l Label) String() string {
	if l.kind == labelHTML {
		return "<" + l.text + ">"
	}
	return `"` + l.Escaped() + `"`
}

// escapeString applies the raw-label escaping rules left to right:
// a double quote becomes \", a backslash is doubled unless it begins one of
// the exempt directives, and every other byte passes through unchanged.
// Control characters and non-ASCII text are not transformed, so the
// function is byte-oriented and UTF-8 safe.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) && strings.IndexByte(escapeExempt, s[i+1]) >= 0 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
