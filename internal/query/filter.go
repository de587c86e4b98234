package query

import (
	"fmt"
	"strings"
)

// Predicate is one boolean condition appended to a Filter.
// Variants are conjoined with AND when the filter is built;
// a filter with zero predicates builds to the identity (match all).
type Predicate interface {
	clause(argPos int) (string, []any)
}

// Eq matches rows where column equals value.
type Eq struct {
	Column string
	Value  any
}

func (p Eq) clause(argPos int) (string, []any) {
	return fmt.Sprintf("%s = $%d", p.Column, argPos), []any{p.Value}
}

// ContainsAny matches rows where any of the columns contains the term
// as a case-insensitive substring. The same argument is shared across
// columns so the term is bound once.
type ContainsAny struct {
	Columns []string
	Term    string
}

func (p ContainsAny) clause(argPos int) (string, []any) {
	parts := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, argPos)
	}
	return "(" + strings.Join(parts, " OR ") + ")", []any{"%" + p.Term + "%"}
}

// Filter accumulates predicates and conjoins them at build time.
type Filter struct {
	preds []Predicate
}

func NewFilter() *Filter {
	return &Filter{}
}

func (f *Filter) Where(p Predicate) *Filter {
	f.preds = append(f.preds, p)
	return f
}

// Build renders the filter as a SQL boolean expression with positional
// arguments starting at startPos. An empty filter returns an empty
// clause and no arguments; callers omit the WHERE keyword in that case.
func (f *Filter) Build(startPos int) (string, []any) {
	if len(f.preds) == 0 {
		return "", nil
	}

	var clauses []string
	var args []any
	pos := startPos
	for _, p := range f.preds {
		clause, clauseArgs := p.clause(pos)
		clauses = append(clauses, clause)
		args = append(args, clauseArgs...)
		pos += len(clauseArgs)
	}

	return strings.Join(clauses, " AND "), args
}

// Len reports the number of appended predicates.
func (f *Filter) Len() int {
	return len(f.preds)
}
