package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
	"sports-federation-api/entity"
	"sports-federation-api/enum"
	"sports-federation-api/repository"
	"sports-federation-api/security"
	"sports-federation-api/util"
)

type AuthUsecaseImpl struct {
	*repository.AuthRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(authRepository *repository.AuthRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{AuthRepository: authRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return res.RegisterResponse{}, err
	}
	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.RegisterResponse{}, err
	}

	role := enum.Role(request.Role)
	if role == "" {
		role = enum.RolePlayer
	}

	newUser := &entity.User{
		Name:        request.Username,
		Email:       request.Email,
		Role:        role,
		PhoneNumber: request.PhoneNumber,
	}

	newAccount := &entity.Account{
		UserName: request.Username,
		Password: hashPassword,
		User:     *newUser,
	}
	// save to db
	if err := uc.AuthRepository.Save(ctx, trx, newAccount); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user : %v", err)
		return res.RegisterResponse{}, err
	}
	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user : %v", err)
		return res.RegisterResponse{}, err
	}
	// mapping response
	return res.RegisterResponse{
		ID:       newAccount.User.ID,
		Username: newAccount.UserName,
		Email:    newAccount.User.Email,
		Role:     string(newAccount.User.Role),
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return res.LoginResponse{}, err
	}

	// find by username
	currentAccount, err := uc.AuthRepository.FindByUsername(uc.DB.WithContext(ctx), request.Username)
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to find username = %v", err)
		return res.LoginResponse{}, errors.New("invalid username or password")
	}
	// compare the password
	if matchPassword := util.ComparePassword(currentAccount.Password, request.Password); !matchPassword {
		uc.Logger.Errorf("Failed to compare password for user %s", request.Username)
		return res.LoginResponse{}, errors.New("invalid username or password")
	}
	// generate token
	token, err := uc.JWT.GenerateToken(&currentAccount.User)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token = %v", err)
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{
		Token: token,
	}, nil
}
