package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// fakeRoleRepo implementa repository.RoleRepository en memoria.
type fakeRoleRepo struct {
	roles map[string]*entity.Role // por id
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[string]*entity.Role)}
}

func (f *fakeRoleRepo) Create(role *entity.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return f.roles[id], nil
}

func (f *fakeRoleRepo) GetByKey(key string) (*entity.Role, error) {
	for _, role := range f.roles {
		if role.Key == key {
			return role, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) Update(role *entity.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) List() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(f.roles))
	for _, role := range f.roles {
		out = append(out, role)
	}
	return out, nil
}

func (f *fakeRoleRepo) Delete(id string) error {
	delete(f.roles, id)
	return nil
}

func TestRoleCreate(t *testing.T) {
	uc := NewRoleUseCase(newFakeRoleRepo())

	out, err := uc.Create(dto.CreateRoleRequest{
		Key:         "cashier",
		Name:        "Cajero",
		Permissions: []string{"sales:create"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "cashier", out.Key)
	assert.False(t, out.IsSystem)

	// La key es un slug único global: repetirla es un duplicado
	_, err = uc.Create(dto.CreateRoleRequest{Key: "cashier", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRoleCreateKeyInvalida(t *testing.T) {
	uc := NewRoleUseCase(newFakeRoleRepo())

	for _, key := range []string{"", "Con Espacios", "MAYUS", "acentué"} {
		_, err := uc.Create(dto.CreateRoleRequest{Key: key, Name: "X"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "key %q", key)
	}
}

func TestRoleEnsureSuperAdmin(t *testing.T) {
	uc := NewRoleUseCase(newFakeRoleRepo())

	out, err := uc.EnsureSuperAdmin("", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleKeySuperAdmin, out.Key)
	assert.Equal(t, "Super Admin", out.Name)
	assert.Equal(t, []string{"*"}, out.Permissions)
	assert.True(t, out.IsSystem)

	// Idempotente: la segunda llamada devuelve el mismo rol
	again, err := uc.EnsureSuperAdmin("Super Admin", "")
	require.NoError(t, err)
	assert.Equal(t, out.ID, again.ID)
}

func TestRoleUpdateKeyInmutable(t *testing.T) {
	uc := NewRoleUseCase(newFakeRoleRepo())

	created, err := uc.Create(dto.CreateRoleRequest{Key: "manager", Name: "Gerente"})
	require.NoError(t, err)

	nombre := "Gerente de tienda"
	out, err := uc.Update(created.ID, dto.UpdateRoleRequest{
		Name:        &nombre,
		Permissions: []string{"products:write"},
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", out.Key)
	assert.Equal(t, "Gerente de tienda", out.Name)
	assert.Equal(t, []string{"products:write"}, out.Permissions)

	// Rol inexistente: (nil, nil), el handler responde 404
	out, err = uc.Update("no-existe", dto.UpdateRoleRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRoleDelete(t *testing.T) {
	repo := newFakeRoleRepo()
	uc := NewRoleUseCase(repo)

	created, err := uc.Create(dto.CreateRoleRequest{Key: "temporal", Name: "Temporal"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestRoleDeleteSistema(t *testing.T) {
	repo := newFakeRoleRepo()
	uc := NewRoleUseCase(repo)

	out, err := uc.EnsureSuperAdmin("", "")
	require.NoError(t, err)

	// Los roles de sistema nunca se eliminan, sin importar quién llama
	assert.ErrorIs(t, uc.Delete(out.ID), domain.ErrSystemRole)
	got, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
