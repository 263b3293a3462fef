// Package parser turns text into field values.
//
// A Parser knows a grammar; it knows nothing about the value types. Value
// types pull the fields they need out of the Result, so a new value type
// needs a new From factory, not a new grammar.
package parser

import "chrono/pkg/datetime/field"

//go:generate mockgen -source=parser.go -destination=../mocks/parser.go -package=mocks Parser

// Parser produces a Result from text, or a CodeParseGrammar error describing
// the position and expectation that failed.
//
// Implementations must be safe for concurrent use.
type Parser interface {
	Parse(text string) (*Result, error)
}

var (
	isoYear      = mustBuild(NewBuilder().AppendSignedValue(field.Year, 2, 6))
	isoYearMonth = mustBuild(NewBuilder().
			AppendSignedValue(field.Year, 2, 6).
			AppendLiteral("-").
			AppendValue(field.MonthOfYear, 2, 2))
	isoDate = mustBuild(NewBuilder().
		AppendSignedValue(field.Year, 2, 6).
		AppendLiteral("-").
		AppendValue(field.MonthOfYear, 2, 2).
		AppendLiteral("-").
		AppendValue(field.DayOfMonth, 2, 2))
)

// ISOYear parses an optionally signed year of 2 to 6 digits, such as 2007.
func ISOYear() Parser { return isoYear }

// ISOYearMonth parses year-month text, such as 2007-12.
func ISOYearMonth() Parser { return isoYearMonth }

// ISODate parses calendar dates, such as 2007-12-03.
func ISODate() Parser { return isoDate }

func mustBuild(b *Builder) *PatternParser {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
