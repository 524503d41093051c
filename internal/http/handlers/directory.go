package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-classifieds/internal/errors"
	"github.com/pribylovaa/go-classifieds/internal/http/dto"
	"github.com/pribylovaa/go-classifieds/internal/models"
)

// Categories — GET /categories?category_id&subcategory_id.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c, err := h.svc.Categories(r.Context(), q.Get("category_id"), q.Get("subcategory_id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.ok(w, dto.CategoriesFrom(c))
}

// Sports — GET /sports.
func (h *Handlers) Sports(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Sports(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.ok(w, dto.SportsFrom(out))
}

// Areas — GET /areas.
func (h *Handlers) Areas(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Areas(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.ok(w, dto.AreasFrom(out))
}

// SubAreasBySport — GET /sports/{sportId}/sub-areas.
func (h *Handlers) SubAreasBySport(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.SubAreasBySport(r.Context(), chi.URLParam(r, "sportId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.ok(w, dto.SubAreasFrom(out))
}

// SubAreasByArea — GET /sub-areas/area/{areaId}.
func (h *Handlers) SubAreasByArea(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.SubAreasByArea(r.Context(), chi.URLParam(r, "areaId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.ok(w, dto.SubAreasFrom(out))
}

// StoresBySubArea — GET /stores/sub-area/{subAreaId}.
func (h *Handlers) StoresBySubArea(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.StoresBySubArea(r.Context(), chi.URLParam(r, "subAreaId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.ok(w, dto.StoresFrom(out))
}

// ServiceContacts возвращает хендлер справочника экстренных служб:
// GET /security/by-ward, /security/by-area, /medical/by-ward, /medical/by-area.
func (h *Handlers) ServiceContacts(kind models.ServiceKind, by models.Grouping) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.svc.ServiceContacts(r.Context(), kind, by)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		h.ok(w, dto.ServiceContactsFrom(out))
	}
}

func (h *Handlers) ok(w http.ResponseWriter, v any) {
	cacheFor(w, h.opts.DirectoryMaxAge)
	writeJSON(w, http.StatusOK, v)
}
