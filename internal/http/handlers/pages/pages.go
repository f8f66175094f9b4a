// Package pages отдает статические страницы: стартовую и "страница не найдена".
package pages

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/loyalty-userapp/internal/http/views"
)

func Landing(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, views.Landing())
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, views.NotFound())
}
