package httpapi

import (
	"net/http"
	"strings"

	"desi-beats/menu-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Category", "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.Categories.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, "Category", "Failed to fetch category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) getCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	c, err := h.Categories.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err, "Category", "Failed to fetch category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	if !decodeJSON(w, r, &c) {
		return
	}
	if err := h.Categories.Create(r.Context(), &c); err != nil {
		writeServiceError(w, err, "Category", "Failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var patch domain.CategoryPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	c, err := h.Categories.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeServiceError(w, err, "Category", "Failed to update category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Categories.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err, "Category", "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getMenuItems serves the full menu, one category (?categoryId=) or the
// featured selection (?featured=true).
func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.MenuItemFilter{
		CategoryID:   q.Get("categoryId"),
		FeaturedOnly: strings.EqualFold(q.Get("featured"), "true"),
	}
	items, err := h.MenuItems.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "Menu item", "Failed to fetch menu items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.MenuItems.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, "Menu item", "Failed to fetch menu item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	item := domain.MenuItem{Available: true}
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := h.MenuItems.Create(r.Context(), &item); err != nil {
		writeServiceError(w, err, "Menu item", "Failed to create menu item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var patch domain.MenuItemPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	item, err := h.MenuItems.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeServiceError(w, err, "Menu item", "Failed to update menu item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.MenuItems.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err, "Menu item", "Failed to delete menu item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error retrieving the file")
		return
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		writeError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF allowed")
		return
	}

	item, err := h.MenuItems.UploadImage(r.Context(), mux.Vars(r)["id"], header.Filename, file)
	if err != nil {
		writeServiceError(w, err, "Menu item", "Failed to save image")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
