package dto

import (
	"strconv"

	"newsroom/internal/apperr"
	"newsroom/internal/domain"
	"newsroom/internal/query"
	"newsroom/pkg/pagination"

	"github.com/labstack/echo/v4"
)

// ListArticlesQuery is the validated, defaulted query for GET /articles.
type ListArticlesQuery struct {
	AuthorID *int64
	Search   string
	Page     int
	Limit    int
	Sort     query.Direction
	SortBy   *query.Metric
}

// ParseListArticlesQuery validates every query parameter, collecting one
// issue per bad field so the caller sees all problems at once.
func ParseListArticlesQuery(c echo.Context) (*ListArticlesQuery, error) {
	var issues []apperr.Issue

	q := &ListArticlesQuery{
		Search: c.QueryParam("search"),
		Page:   1,
		Limit:  pagination.PageDefaultLimit,
		Sort:   query.Desc,
	}

	if v, ok := parseOptionalPositiveInt(c, "page", &issues); ok {
		q.Page = int(v)
	}
	if v, ok := parseOptionalPositiveInt(c, "limit", &issues); ok {
		q.Limit = int(v)
	}
	if v, ok := parseOptionalPositiveInt(c, "authorId", &issues); ok {
		q.AuthorID = &v
	}

	if raw := c.QueryParam("sort"); raw != "" {
		dir, err := query.ParseDirection(raw)
		if err != nil {
			issues = append(issues, apperr.Issue{
				Code:    apperr.CodeInvalidEnum,
				Path:    []string{"sort"},
				Message: "Expected 'asc' | 'desc'",
			})
		} else {
			q.Sort = dir
		}
	}

	if raw := c.QueryParam("sortBy"); raw != "" {
		metric, err := query.ParseMetric(raw)
		if err != nil {
			issues = append(issues, apperr.Issue{
				Code:    apperr.CodeInvalidEnum,
				Path:    []string{"sortBy"},
				Message: "Expected 'shares' | 'views'",
			})
		} else {
			q.SortBy = &metric
		}
	}

	req := pagination.OffsetRequest{Page: q.Page, Limit: q.Limit}
	req.Normalize()
	q.Page, q.Limit = req.Page, req.Limit

	if len(issues) > 0 {
		return nil, apperr.NewValidationIssues(issues...)
	}

	return q, nil
}

// ParseHighlightsQuery returns the optional authorId filter.
func ParseHighlightsQuery(c echo.Context) (*int64, error) {
	var issues []apperr.Issue

	var authorID *int64
	if v, ok := parseOptionalPositiveInt(c, "authorId", &issues); ok {
		authorID = &v
	}

	if len(issues) > 0 {
		return nil, apperr.NewValidationIssues(issues...)
	}

	return authorID, nil
}

// ParseIDParam validates the :id path parameter.
func ParseIDParam(c echo.Context) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.NewValidationIssues(apperr.Issue{
			Code:    apperr.CodeInvalidType,
			Path:    []string{"id"},
			Message: "Expected number",
		})
	}
	if id <= 0 {
		return 0, apperr.NewValidationIssues(apperr.Issue{
			Code:    apperr.CodeTooSmall,
			Path:    []string{"id"},
			Message: "Number must be greater than 0",
		})
	}

	return id, nil
}

// parseOptionalPositiveInt reads one optional positive-integer query
// parameter. The bool reports whether a valid value was present; a bad
// value appends an issue and reports false.
func parseOptionalPositiveInt(c echo.Context, name string, issues *[]apperr.Issue) (int64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*issues = append(*issues, apperr.Issue{
			Code:    apperr.CodeInvalidType,
			Path:    []string{name},
			Message: "Expected number",
		})
		return 0, false
	}
	if v <= 0 {
		*issues = append(*issues, apperr.Issue{
			Code:    apperr.CodeTooSmall,
			Path:    []string{name},
			Message: "Number must be greater than 0",
		})
		return 0, false
	}

	return v, true
}

// Response envelopes.

type ListArticlesResponse struct {
	Success bool `json:"success"`
	pagination.OffsetResult[domain.ArticleWithAuthor]
}

type ArticleResponse struct {
	Success bool                     `json:"success"`
	Data    domain.ArticleWithAuthor `json:"data"`
}

type HighlightsResponse struct {
	Success bool              `json:"success"`
	Data    domain.Highlights `json:"data"`
}

type SummaryPayload struct {
	Summary string `json:"summary"`
}

type SummarizeResponse struct {
	Success bool           `json:"success"`
	Data    SummaryPayload `json:"data"`
}

type AuthorsResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    []domain.Author `json:"data"`
}
