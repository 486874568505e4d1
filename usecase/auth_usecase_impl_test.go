package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"sports-federation-api/config/common"
	"sports-federation-api/dto/req"
	"sports-federation-api/entity"
	"sports-federation-api/repository"
	"sports-federation-api/security"
)

func newAuthFixture(t *testing.T) AuthUsecase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Account{}, &entity.User{}, &entity.PlayerProfile{}))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	jwt := security.NewJWT(&common.Config{Viper: v})

	return NewAuthUsecase(repository.NewAuthRepository(), validator.New(), db, logger, jwt)
}

func TestRegisterThenLogin(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	registered, err := auth.RegisterUser(ctx, &req.RegisterRequest{
		Username:    "alice",
		PhoneNumber: "555000111",
		Email:       "alice@federation.test",
		Password:    "s3cret-pass",
		Role:        "coach",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.ID)
	require.Equal(t, "alice", registered.Username)
	require.Equal(t, "coach", registered.Role)

	login, err := auth.LoginUser(ctx, &req.LoginRequest{
		Username: "alice",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	jwt := security.NewJWT(&common.Config{Viper: v})

	registered, err := auth.RegisterUser(ctx, &req.RegisterRequest{
		Username:    "bob",
		PhoneNumber: "555000222",
		Email:       "bob@federation.test",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	login, err := auth.LoginUser(ctx, &req.LoginRequest{Username: "bob", Password: "s3cret-pass"})
	require.NoError(t, err)

	identity, err := jwt.Verify(login.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, identity.UserID)
	require.Equal(t, "player", identity.Role) // default role when none requested
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.RegisterUser(ctx, &req.RegisterRequest{
		Username:    "carol",
		PhoneNumber: "555000333",
		Email:       "carol@federation.test",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = auth.LoginUser(ctx, &req.LoginRequest{Username: "carol", Password: "wrong"})
	require.EqualError(t, err, "invalid username or password")

	_, err = auth.LoginUser(ctx, &req.LoginRequest{Username: "nobody", Password: "wrong"})
	require.EqualError(t, err, "invalid username or password")
}

func TestRegisterValidatesRequest(t *testing.T) {
	auth := newAuthFixture(t)

	_, err := auth.RegisterUser(context.Background(), &req.RegisterRequest{
		Username:    "dave",
		PhoneNumber: "555000444",
		Email:       "not-an-email",
		Password:    "short",
	})
	require.Error(t, err)
}
