package utils

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/constvars"
	"context"
)

func GetPrincipal(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	return principal, ok
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
