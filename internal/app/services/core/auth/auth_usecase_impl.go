package auth

import (
	"caps-service/internal/app/config"
	"caps-service/internal/app/models"
	"caps-service/internal/app/services/core/users"
	"caps-service/internal/app/services/shared/redis"
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"caps-service/internal/pkg/exceptions"
	"caps-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  users.UserRepository
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository users.UserRepository,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) SignUp(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", request.Username),
	)

	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.SignUp error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	userModel := &models.User{
		Username:   request.Username,
		Password:   hashedPassword,
		Email:      request.Email,
		Role:       request.Role,
		DateJoined: time.Now().UTC(),
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		uc.Log.Error("authUsecase.SignUp error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRoleKey, userModel.Role),
	)

	return &responses.Signup{
		UserID:     userID,
		Username:   userModel.Username,
		Email:      userModel.Email,
		Role:       userModel.Role,
		DateJoined: userModel.DateJoined,
	}, nil
}

func (uc *authUsecase) SignIn(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("username", request.Username),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	token, err := utils.GeneratePrincipalJWT(user.ID, user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.SignIn error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.SignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) SignOut(ctx context.Context, principal *models.Principal) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SignOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	// The token stays valid until its expiry, so the denylist entry only needs
	// to live that long.
	ttl := time.Until(principal.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	revokedKey := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, principal.TokenID)
	err := uc.RedisRepository.Set(ctx, revokedKey, constvars.RedisRevokedTokenPlaceholder, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.SignOut error revoking token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.SignOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)
	return nil
}
