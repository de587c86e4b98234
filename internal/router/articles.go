package router

import (
	"net/http"

	"newsroom/internal/dto"
	"newsroom/internal/storage"
	"newsroom/internal/summary"
	"newsroom/pkg/pagination"

	"github.com/labstack/echo/v4"
)

type ArticleRouter struct {
	e          *echo.Echo
	articles   storage.ArticleReader
	summarizer *summary.Summarizer
}

func NewArticleRouter(e *echo.Echo, articles storage.ArticleReader, summarizer *summary.Summarizer) *ArticleRouter {
	return &ArticleRouter{
		e:          e,
		articles:   articles,
		summarizer: summarizer,
	}
}

func (r *ArticleRouter) Bind() {
	r.e.GET("/articles", r.listHandler)
	r.e.GET("/articles/highlights", r.highlightsHandler)
	r.e.GET("/articles/:id", r.getHandler)
	r.e.POST("/articles/:id/summarize", r.summarizeHandler)
}

// listHandler godoc
// @Summary List articles with filtering, sorting and pagination
// @Tags articles
// @Produce json
// @Param authorId query int false "Filter by author id"
// @Param search query string false "Case-insensitive substring match on title or content"
// @Param sortBy query string false "Sort metric" Enums(shares, views)
// @Param sort query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.ListArticlesResponse
// @Failure 422 {object} map[string]any
// @Router /articles [get]
func (r *ArticleRouter) listHandler(c echo.Context) error {
	q, err := dto.ParseListArticlesQuery(c)
	if err != nil {
		return err
	}

	items, total, err := r.articles.List(c.Request().Context(), storage.ListArticlesParams{
		AuthorID: q.AuthorID,
		Search:   q.Search,
		SortBy:   q.SortBy,
		Sort:     q.Sort,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}

	result := pagination.NewOffsetResult(items, total, q.Page, q.Limit)

	return c.JSON(http.StatusOK, dto.ListArticlesResponse{
		Success:      true,
		OffsetResult: *result,
	})
}

// highlightsHandler godoc
// @Summary Most shared and most viewed article for an author
// @Tags articles
// @Produce json
// @Param authorId query int false "Author id"
// @Success 200 {object} dto.HighlightsResponse
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /articles/highlights [get]
func (r *ArticleRouter) highlightsHandler(c echo.Context) error {
	authorID, err := dto.ParseHighlightsQuery(c)
	if err != nil {
		return err
	}

	highlights, err := r.articles.Highlights(c.Request().Context(), authorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.HighlightsResponse{
		Success: true,
		Data:    *highlights,
	})
}

// getHandler godoc
// @Summary Fetch a single article by id
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]any
// @Router /articles/{id} [get]
func (r *ArticleRouter) getHandler(c echo.Context) error {
	id, err := dto.ParseIDParam(c)
	if err != nil {
		return err
	}

	article, err := r.articles.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ArticleResponse{
		Success: true,
		Data:    *article,
	})
}

// summarizeHandler resolves the article first so an unknown id is a 404
// before the summarizer is ever invoked. Summarization itself cannot
// fail the request; provider errors degrade to the stored fallback.
// @Summary Generate a short summary for an article
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} dto.SummarizeResponse
// @Failure 404 {object} map[string]any
// @Router /articles/{id}/summarize [post]
func (r *ArticleRouter) summarizeHandler(c echo.Context) error {
	id, err := dto.ParseIDParam(c)
	if err != nil {
		return err
	}

	article, err := r.articles.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	text := r.summarizer.Summarize(c.Request().Context(), *article)

	return c.JSON(http.StatusOK, dto.SummarizeResponse{
		Success: true,
		Data:    dto.SummaryPayload{Summary: text},
	})
}
