package auth

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/dto/requests"
	"caps-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, request *requests.Signup) (*responses.Signup, error)
	SignIn(ctx context.Context, request *requests.Login) (*responses.Login, error)
	SignOut(ctx context.Context, principal *models.Principal) error
}
