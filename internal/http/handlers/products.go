package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-classifieds/internal/errors"
	"github.com/pribylovaa/go-classifieds/internal/http/dto"
	"github.com/pribylovaa/go-classifieds/internal/query"
)

// ListProducts — GET /products.
// Параметры: limit, category_id, subcategory_id, search, date, last_post_time, post_id, fields.
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.svc.ListProducts(r.Context(), query.Params{
		Limit:         q.Get("limit"),
		CategoryID:    q.Get("category_id"),
		SubcategoryID: q.Get("subcategory_id"),
		Search:        q.Get("search"),
		Date:          q.Get("date"),
		LastPostTime:  q.Get("last_post_time"),
		PostID:        q.Get("post_id"),
		Fields:        q.Get("fields"),
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if page.NextCursor != "" {
		w.Header().Set(HeaderNextCursor, page.NextCursor)
	}
	cacheFor(w, h.opts.ProductsMaxAge)
	writeJSON(w, http.StatusOK, dto.PostsFrom(page.Posts))
}
