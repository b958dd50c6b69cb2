package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerLifecycle(t *testing.T) {
	s := NewMemoryStore()

	mom := s.AddOwner(OwnerProfile{Name: "Aina", Role: "Mom"})
	dad := s.AddOwner(OwnerProfile{Name: "Farid", Role: "Dad"})
	require.NotEmpty(t, mom.ID)
	require.NotEqual(t, mom.ID, dad.ID)

	owners := s.ListOwners()
	require.Len(t, owners, 2)
	assert.Equal(t, "Aina", owners[0].Name)

	mom.Phone = "012-3456789"
	require.NoError(t, s.UpdateOwner(mom))
	assert.Equal(t, "012-3456789", s.ListOwners()[0].Phone)

	require.NoError(t, s.RemoveOwner(dad.ID))
	assert.Len(t, s.ListOwners(), 1)

	assert.ErrorIs(t, s.UpdateOwner(OwnerProfile{ID: "missing"}), ErrOwnerNotFound)
	assert.ErrorIs(t, s.RemoveOwner("missing"), ErrOwnerNotFound)
}

func TestFirstPetBecomesActive(t *testing.T) {
	s := NewMemoryStore()
	require.Nil(t, s.ActivePet())

	biscuit := s.AddPet(PetProfile{Name: "Biscuit", Type: PetTypeDog})
	s.AddPet(PetProfile{Name: "Mochi", Type: PetTypeCat})

	active := s.ActivePet()
	require.NotNil(t, active)
	assert.Equal(t, biscuit.ID, active.ID)
}

func TestSetActivePet(t *testing.T) {
	s := NewMemoryStore()
	s.AddPet(PetProfile{Name: "Biscuit", Type: PetTypeDog})
	mochi := s.AddPet(PetProfile{Name: "Mochi", Type: PetTypeCat})

	require.NoError(t, s.SetActivePet(mochi.ID))
	assert.Equal(t, "Mochi", s.ActivePet().Name)

	assert.ErrorIs(t, s.SetActivePet("missing"), ErrPetNotFound)
	assert.Equal(t, "Mochi", s.ActivePet().Name)
}

func TestRemoveActivePetPicksReplacement(t *testing.T) {
	s := NewMemoryStore()
	biscuit := s.AddPet(PetProfile{Name: "Biscuit", Type: PetTypeDog})
	s.AddPet(PetProfile{Name: "Mochi", Type: PetTypeCat})

	require.NoError(t, s.RemovePet(biscuit.ID))

	active := s.ActivePet()
	require.NotNil(t, active)
	assert.Equal(t, "Mochi", active.Name)

	require.NoError(t, s.RemovePet(active.ID))
	assert.Nil(t, s.ActivePet())
}

func TestUpdatePet(t *testing.T) {
	s := NewMemoryStore()
	biscuit := s.AddPet(PetProfile{Name: "Biscuit", Type: PetTypeDog, Weight: 11})

	biscuit.Weight = 12.5
	require.NoError(t, s.UpdatePet(biscuit))
	assert.Equal(t, 12.5, s.ListPets()[0].Weight)

	assert.ErrorIs(t, s.UpdatePet(PetProfile{ID: "missing"}), ErrPetNotFound)
}

func TestActivePetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.AddPet(PetProfile{Name: "Biscuit", Type: PetTypeDog})

	active := s.ActivePet()
	active.Name = "Renamed"

	assert.Equal(t, "Biscuit", s.ActivePet().Name)
}
