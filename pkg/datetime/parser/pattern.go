package parser

import (
	"fmt"
	"strings"

	"chrono/pkg/datetime/field"
	dErrors "chrono/pkg/domain-errors"
)

// maxDigits keeps every captured number within int range on 32-bit targets.
const maxDigits = 9

type element struct {
	literal  string
	field    field.Field
	minWidth int
	maxWidth int
	signed   bool
}

func (e element) isLiteral() bool {
	return e.field == 0
}

func (e element) expectation() string {
	if e.isLiteral() {
		return fmt.Sprintf("%q", e.literal)
	}
	if e.minWidth == e.maxWidth {
		return fmt.Sprintf("%d digits for %s", e.minWidth, e.field)
	}
	return fmt.Sprintf("%d to %d digits for %s", e.minWidth, e.maxWidth, e.field)
}

// PatternParser matches text against a fixed sequence of literals and
// numeric fields. The whole text must match. It holds no mutable state.
type PatternParser struct {
	elements []element
}

// Parse scans text and returns the captured fields.
func (p *PatternParser) Parse(text string) (*Result, error) {
	result := NewResult()
	pos := 0

	for _, el := range p.elements {
		if el.isLiteral() {
			if !strings.HasPrefix(text[pos:], el.literal) {
				return nil, grammarError(text, pos, el)
			}
			pos += len(el.literal)
			continue
		}

		start := pos
		negative := false
		if el.signed && pos < len(text) && (text[pos] == '-' || text[pos] == '+') {
			negative = text[pos] == '-'
			pos++
		}

		value, digits := 0, 0
		for pos < len(text) && digits < el.maxWidth && isDigit(text[pos]) {
			value = value*10 + int(text[pos]-'0')
			pos++
			digits++
		}
		if digits < el.minWidth {
			return nil, grammarError(text, start, el)
		}
		if negative {
			value = -value
		}
		if err := result.Set(el.field, value); err != nil {
			return nil, err
		}
	}

	if pos != len(text) {
		return nil, dErrors.At(pos, "cannot parse %q: unexpected trailing text %q at position %d",
			text, text[pos:], pos)
	}
	return result, nil
}

// String renders the pattern, e.g. "±Year{2,6} '-' MonthOfYear{2}".
func (p *PatternParser) String() string {
	parts := make([]string, 0, len(p.elements))
	for _, el := range p.elements {
		switch {
		case el.isLiteral():
			parts = append(parts, "'"+el.literal+"'")
		case el.minWidth == el.maxWidth:
			parts = append(parts, fmt.Sprintf("%s%s{%d}", signMark(el.signed), el.field, el.minWidth))
		default:
			parts = append(parts, fmt.Sprintf("%s%s{%d,%d}", signMark(el.signed), el.field, el.minWidth, el.maxWidth))
		}
	}
	return strings.Join(parts, " ")
}

func grammarError(text string, pos int, el element) error {
	found := "end of text"
	if pos < len(text) {
		found = fmt.Sprintf("%q", text[pos:pos+1])
	}
	return dErrors.At(pos, "cannot parse %q: expected %s at position %d, found %s",
		text, el.expectation(), pos, found)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func signMark(signed bool) string {
	if signed {
		return "±"
	}
	return ""
}

// Builder assembles a PatternParser. The first invalid append is reported by
// Build; later appends are ignored.
type Builder struct {
	elements []element
	err      error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AppendLiteral requires text to appear verbatim.
func (b *Builder) AppendLiteral(text string) *Builder {
	if b.err != nil {
		return b
	}
	if text == "" {
		b.err = dErrors.New(dErrors.CodeInvalidInput, "literal must not be empty")
		return b
	}
	b.elements = append(b.elements, element{literal: text})
	return b
}

// AppendValue captures an unsigned number of minWidth to maxWidth digits.
func (b *Builder) AppendValue(f field.Field, minWidth, maxWidth int) *Builder {
	return b.appendValue(f, minWidth, maxWidth, false)
}

// AppendSignedValue is AppendValue with an optional leading '+' or '-'.
func (b *Builder) AppendSignedValue(f field.Field, minWidth, maxWidth int) *Builder {
	return b.appendValue(f, minWidth, maxWidth, true)
}

func (b *Builder) appendValue(f field.Field, minWidth, maxWidth int, signed bool) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case !f.IsValid():
		b.err = dErrors.Newf(dErrors.CodeInvalidInput, "unknown field %d", int(f))
	case minWidth < 1 || maxWidth < minWidth || maxWidth > maxDigits:
		b.err = dErrors.Newf(dErrors.CodeInvalidInput,
			"invalid width [%d, %d] for %s", minWidth, maxWidth, f)
	default:
		for _, el := range b.elements {
			if el.field == f {
				b.err = dErrors.Newf(dErrors.CodeInvalidInput, "field %s appended twice", f)
				return b
			}
		}
		b.elements = append(b.elements, element{field: f, minWidth: minWidth, maxWidth: maxWidth, signed: signed})
	}
	return b
}

// Build returns the parser, or the first error recorded while appending.
func (b *Builder) Build() (*PatternParser, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.elements) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "pattern has no elements")
	}
	elements := make([]element, len(b.elements))
	copy(elements, b.elements)
	return &PatternParser{elements: elements}, nil
}
