package query

import "fmt"

// Direction is the sort direction for article listings.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Asc, Desc:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid sort direction: %q", s)
	}
}

func (d Direction) SQL() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

// Metric is a sortable article column. The whitelist keeps caller
// input out of SQL identifiers.
type Metric string

const (
	ByShares Metric = "shares"
	ByViews  Metric = "views"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case ByShares, ByViews:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("invalid sort key: %q", s)
	}
}

func (m Metric) Column() string {
	return string(m)
}
