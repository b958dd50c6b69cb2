package profile

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrPetNotFound   = errors.New("pet not found")
)

// MemoryStore holds the family profile (owners and pets) in memory.
// Profiles are local-only state; they are never persisted server-side.
// Insertion order is preserved for display.
type MemoryStore struct {
	mu          sync.RWMutex
	owners      []OwnerProfile
	pets        []PetProfile
	activePetID string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListOwners() []OwnerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]OwnerProfile, len(s.owners))
	copy(out, s.owners)
	return out
}

func (s *MemoryStore) AddOwner(o OwnerProfile) OwnerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = uuid.New().String()
	s.owners = append(s.owners, o)
	return o
}

func (s *MemoryStore) UpdateOwner(o OwnerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.owners {
		if s.owners[i].ID == o.ID {
			s.owners[i] = o
			return nil
		}
	}
	return ErrOwnerNotFound
}

func (s *MemoryStore) RemoveOwner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.owners {
		if s.owners[i].ID == id {
			s.owners = append(s.owners[:i], s.owners[i+1:]...)
			return nil
		}
	}
	return ErrOwnerNotFound
}

func (s *MemoryStore) ListPets() []PetProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PetProfile, len(s.pets))
	copy(out, s.pets)
	return out
}

// AddPet stores a new pet. The first pet added becomes the active pet.
func (s *MemoryStore) AddPet(p PetProfile) PetProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New().String()
	s.pets = append(s.pets, p)
	if s.activePetID == "" {
		s.activePetID = p.ID
	}
	return p
}

func (s *MemoryStore) UpdatePet(p PetProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pets {
		if s.pets[i].ID == p.ID {
			s.pets[i] = p
			return nil
		}
	}
	return ErrPetNotFound
}

func (s *MemoryStore) RemovePet(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pets {
		if s.pets[i].ID == id {
			s.pets = append(s.pets[:i], s.pets[i+1:]...)
			if s.activePetID == id {
				s.activePetID = ""
				if len(s.pets) > 0 {
					s.activePetID = s.pets[0].ID
				}
			}
			return nil
		}
	}
	return ErrPetNotFound
}

func (s *MemoryStore) SetActivePet(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.pets {
		if p.ID == id {
			s.activePetID = id
			return nil
		}
	}
	return ErrPetNotFound
}

// ActivePet returns the pet used to personalise AI tools, or nil when no
// profile is active.
func (s *MemoryStore) ActivePet() *PetProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.pets {
		if p.ID == s.activePetID {
			pet := p
			return &pet
		}
	}
	return nil
}
