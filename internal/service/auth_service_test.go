package service

import (
	"context"
	"testing"

	"pecaspos/internal/config"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, *memUsuarioRepo) {
	t.Helper()
	repo := newMemUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "segredo-de-teste",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("hgmoto2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.Usuario{
		Username:     "hgmoto",
		Nome:         "Operador HG",
		PasswordHash: string(hash),
		Ativo:        true,
	}))
	return NewAuthService(repo, cfg), repo
}

func TestLoginComCredenciaisValidas(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "hgmoto", Password: "hgmoto2026"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "hgmoto", resp.User.Username)
}

func TestLoginComSenhaErrada(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "hgmoto", Password: "errada"})
	require.Error(t, err)
	// Same generic message whether the user or the password is wrong.
	assert.EqualError(t, err, "credenciais inválidas")
}

func TestLoginComUsuarioDesconhecido(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "outro", Password: "hgmoto2026"})
	require.Error(t, err)
	assert.EqualError(t, err, "credenciais inválidas")
}

func TestLoginComUsuarioInativo(t *testing.T) {
	svc, repo := newAuthFixture(t)
	ctx := context.Background()

	for _, u := range repo.users {
		u.Ativo = false
	}

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "hgmoto", Password: "hgmoto2026"})
	require.Error(t, err)
}

func TestRefreshDevolveNovoPar(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "hgmoto", Password: "hgmoto2026"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)

	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, login.User.ID, renovado.User.ID)
}

func TestRefreshComTokenInvalido(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "nem-um-jwt")
	require.Error(t, err)
}

func TestRefreshComUsuarioDesativado(t *testing.T) {
	svc, repo := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "hgmoto", Password: "hgmoto2026"})
	require.NoError(t, err)

	for _, u := range repo.users {
		u.Ativo = false
	}

	_, err = svc.Refresh(ctx, login.RefreshToken)
	require.Error(t, err)
}
