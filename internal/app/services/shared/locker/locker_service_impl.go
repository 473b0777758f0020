package locker

import (
	"caps-service/internal/app/services/shared/redis"
	"caps-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo redis.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo redis.RedisRepository, logger *zap.Logger) LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}

	// Only the holder may release; an expired lock re-acquired by another
	// instance keeps its new value.
	if storedVal == "" || storedVal != `"`+lockValue+`"` {
		return nil
	}

	return s.redisRepo.Delete(ctx, key)
}
