package query

import (
	"testing"
)

func TestFilter_Build_Empty(t *testing.T) {
	where, args := NewFilter().Build(1)

	if where != "" {
		t.Errorf("expected empty clause, got %q", where)
	}
	if args != nil {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestFilter_Build_Eq(t *testing.T) {
	where, args := NewFilter().
		Where(Eq{Column: "a.author_id", Value: int64(3)}).
		Build(1)

	if where != "a.author_id = $1" {
		t.Errorf("unexpected clause: %q", where)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilter_Build_ContainsAny(t *testing.T) {
	where, args := NewFilter().
		Where(ContainsAny{Columns: []string{"a.title", "a.content"}, Term: "goal"}).
		Build(1)

	want := "(a.title ILIKE $1 OR a.content ILIKE $1)"
	if where != want {
		t.Errorf("expected %q, got %q", want, where)
	}
	if len(args) != 1 || args[0] != "%goal%" {
		t.Errorf("expected single shared arg, got %v", args)
	}
}

func TestFilter_Build_Conjunction(t *testing.T) {
	where, args := NewFilter().
		Where(Eq{Column: "a.author_id", Value: int64(7)}).
		Where(ContainsAny{Columns: []string{"a.title", "a.content"}, Term: "final"}).
		Build(1)

	want := "a.author_id = $1 AND (a.title ILIKE $2 OR a.content ILIKE $2)"
	if where != want {
		t.Errorf("expected %q, got %q", want, where)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != int64(7) || args[1] != "%final%" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilter_Build_StartPos(t *testing.T) {
	where, _ := NewFilter().
		Where(Eq{Column: "a.author_id", Value: int64(1)}).
		Where(ContainsAny{Columns: []string{"a.title"}, Term: "cup"}).
		Build(3)

	want := "a.author_id = $3 AND (a.title ILIKE $4)"
	if where != want {
		t.Errorf("expected %q, got %q", want, where)
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for invalid direction")
	}

	dir, err := ParseDirection("asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.SQL() != "ASC" {
		t.Errorf("expected ASC, got %q", dir.SQL())
	}
	if Desc.SQL() != "DESC" {
		t.Errorf("expected DESC, got %q", Desc.SQL())
	}
}

func TestParseMetric(t *testing.T) {
	if _, err := ParseMetric("likes"); err == nil {
		t.Error("expected error for unknown metric")
	}

	m, err := ParseMetric("shares")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Column() != "shares" {
		t.Errorf("unexpected column: %q", m.Column())
	}
}
