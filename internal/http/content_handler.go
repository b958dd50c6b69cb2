package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Zaclee030314/pawradise-1/internal/content"
)

type ContentHandler struct {
	repo content.RepoInterface
}

func NewContentHandler(repo content.RepoInterface) *ContentHandler {
	return &ContentHandler{repo: repo}
}

func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.ListEvents(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list events")
		return
	}
	if events == nil {
		events = []*content.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *ContentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.repo.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, content.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "event not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get event")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *ContentHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.repo.ListPlaces(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list places")
		return
	}
	if places == nil {
		places = []*content.Place{}
	}
	respondJSON(w, http.StatusOK, places)
}

func (h *ContentHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.repo.GetPlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, content.ErrPlaceNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "place not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get place")
		return
	}
	respondJSON(w, http.StatusOK, place)
}

func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.ListPosts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list blog posts")
		return
	}
	if posts == nil {
		posts = []*content.BlogPost{}
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.repo.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "blog post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get blog post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}
