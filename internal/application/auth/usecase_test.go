package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// fakeUserRepo puerto de usuarios en memoria, indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByIDs(ids []string) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if u, _ := f.GetByID(id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func newAuthUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:  "secret-de-test",
		ExpDays: 7,
		Issuer:  "puntoventa-test",
	})
}

func TestRegister_HasheaPasswordYDefaultCashier(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@pv.test",
		Password: "secreta123",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, out.Role, "rol por defecto debe ser cashier")

	stored := repo.byEmail["ana@pv.test"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "nunca se persiste el password plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestRegister_PasswordCorto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	// Menos de 8 caracteres: rechazo antes de tocar el repositorio.
	for _, pw := range []string{"", "a", "1234567"} {
		_, err := uc.Register(dto.RegisterRequest{Email: "ana@pv.test", Password: pw, Name: "Ana"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "password %q", pw)
	}
	assert.Empty(t, repo.byEmail, "ningún usuario debe persistirse")

	// Exactamente el mínimo pasa.
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@pv.test", Password: "12345678", Name: "Ana"})
	assert.NoError(t, err)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	first, err := uc.Register(dto.RegisterRequest{Email: "ana@pv.test", Password: "secreta123", Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@pv.test", Password: "otra-clave-99", Name: "Ana 2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// El registro original queda intacto.
	stored := repo.byEmail["ana@pv.test"]
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Ana", stored.Name)
}

func TestLogin_TokenYUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@pv.test", Password: "secreta123", Name: "Ana", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@pv.test", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@pv.test", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@pv.test", Password: "secreta123", Name: "Ana"})
	require.NoError(t, err)

	// Mismo error para email desconocido y para password incorrecto.
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@pv.test", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@pv.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
