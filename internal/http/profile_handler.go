package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Zaclee030314/pawradise-1/internal/profile"
)

type ProfileHandler struct {
	store *profile.MemoryStore
}

func NewProfileHandler(store *profile.MemoryStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

func (h *ProfileHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListOwners())
}

func (h *ProfileHandler) AddOwner(w http.ResponseWriter, r *http.Request) {
	var owner profile.OwnerProfile
	if err := json.NewDecoder(r.Body).Decode(&owner); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if owner.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_owner", "name is required")
		return
	}

	respondJSON(w, http.StatusCreated, h.store.AddOwner(owner))
}

func (h *ProfileHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	var owner profile.OwnerProfile
	if err := json.NewDecoder(r.Body).Decode(&owner); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	owner.ID = chi.URLParam(r, "id")

	if err := h.store.UpdateOwner(owner); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "owner not found")
		return
	}
	respondJSON(w, http.StatusOK, owner)
}

func (h *ProfileHandler) RemoveOwner(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveOwner(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "owner not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListPets())
}

func (h *ProfileHandler) AddPet(w http.ResponseWriter, r *http.Request) {
	var pet profile.PetProfile
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if pet.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_pet", "name is required")
		return
	}

	respondJSON(w, http.StatusCreated, h.store.AddPet(pet))
}

func (h *ProfileHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	var pet profile.PetProfile
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	pet.ID = chi.URLParam(r, "id")

	if err := h.store.UpdatePet(pet); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "pet not found")
		return
	}
	respondJSON(w, http.StatusOK, pet)
}

func (h *ProfileHandler) RemovePet(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemovePet(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "pet not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) SetActivePet(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetActivePet(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, profile.ErrPetNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "pet not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to set active pet")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) GetActivePet(w http.ResponseWriter, r *http.Request) {
	pet := h.store.ActivePet()
	if pet == nil {
		respondError(w, http.StatusNotFound, "not_found", "no active pet")
		return
	}
	respondJSON(w, http.StatusOK, pet)
}
