package post

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/martinvojtus/mv-backend/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	skip := httpx.QueryInt(r, "skip", 0)
	limit := httpx.QueryInt(r, "limit", 50)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	posts, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, posts, http.StatusOK)
	return nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[PostRequest](r)
	if err != nil {
		return err
	}
	if err := validate(in); err != nil {
		return err
	}
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[PostRequest](r)
	if err != nil {
		return err
	}
	if err := validate(in); err != nil {
		return err
	}
	p, err := h.svc.Update(r.Context(), id, in)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteJSON(w, map[string]string{"error": "post not found"}, http.StatusNotFound)
		return nil
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	err = h.svc.Delete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httpx.WriteJSON(w, map[string]string{"error": "post not found"}, http.StatusNotFound)
		return nil
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, ConfirmResponse{Message: "post deleted"}, http.StatusOK)
	return nil
}

func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.DeleteAll(r.Context()); err != nil {
		return err
	}
	httpx.WriteJSON(w, ConfirmResponse{Message: "all posts deleted"}, http.StatusOK)
	return nil
}

func validate(in PostRequest) error {
	if strings.TrimSpace(in.Title) == "" {
		return httpx.BadRequestf("title is required")
	}
	if strings.TrimSpace(in.Text) == "" {
		return httpx.BadRequestf("text is required")
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, httpx.BadRequestf("invalid post id")
	}
	return id, nil
}
