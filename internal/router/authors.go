package router

import (
	"log/slog"
	"net/http"

	"newsroom/internal/domain"
	"newsroom/internal/dto"
	"newsroom/internal/storage"

	"github.com/labstack/echo/v4"
)

type AuthorRouter struct {
	e       *echo.Echo
	authors storage.AuthorReader
}

func NewAuthorRouter(e *echo.Echo, authors storage.AuthorReader) *AuthorRouter {
	return &AuthorRouter{
		e:       e,
		authors: authors,
	}
}

func (r *AuthorRouter) Bind() {
	r.e.GET("/authors", r.listHandler)
}

// listHandler godoc
// @Summary List all authors
// @Tags authors
// @Produce json
// @Success 200 {object} dto.AuthorsResponse
// @Router /authors [get]
func (r *AuthorRouter) listHandler(c echo.Context) error {
	slog.Debug("Listing authors")

	authors, err := r.authors.List(c.Request().Context())
	if err != nil {
		return err
	}

	if authors == nil {
		authors = []domain.Author{}
	}

	return c.JSON(http.StatusOK, dto.AuthorsResponse{
		Success: true,
		Count:   len(authors),
		Data:    authors,
	})
}
