package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"social-spectrum-server/internal/common"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const adminIDCacheTTL = time.Minute

// AdminID returns the id of the user whose email equals admin.email.
// ok is false when no admin email is configured or no such user exists.
func (s *AppService) AdminID(ctx context.Context) (id uint, ok bool, err error) {
	email := s.cfg.Admin.Email
	if email == "" || s.adminLookup == nil {
		return 0, false, nil
	}

	if cached, hit := s.cachedAdminID(ctx); hit {
		return cached, cached != 0, nil
	}

	id, err = s.adminLookup.FindIDByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, common.WrapInternal(err, "resolve admin account")
	}
	s.storeAdminID(ctx, id)
	return id, id != 0, nil
}

func (s *AppService) IsAdmin(ctx context.Context, callerID uint) (bool, error) {
	adminID, ok, err := s.AdminID(ctx)
	if err != nil {
		return false, err
	}
	return ok && adminID == callerID, nil
}

// ForgetAdminID drops the cached admin id, e.g. after accounts change.
func (s *AppService) ForgetAdminID(ctx context.Context) {
	if s.redis == nil {
		return
	}
	cacheCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	_ = s.redis.Del(cacheCtx, s.RedisKey("auth", "admin_id")).Err()
}

func (s *AppService) cachedAdminID(ctx context.Context) (uint, bool) {
	if s.redis == nil {
		return 0, false
	}
	cacheCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	raw, err := s.redis.Get(cacheCtx, s.RedisKey("auth", "admin_id")).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("read admin id from redis failed", "error", err)
		}
		return 0, false
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}

func (s *AppService) storeAdminID(ctx context.Context, id uint) {
	if s.redis == nil {
		return
	}
	cacheCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	key := s.RedisKey("auth", "admin_id")
	if err := s.redis.Set(cacheCtx, key, strconv.FormatUint(uint64(id), 10), adminIDCacheTTL).Err(); err != nil {
		slog.Warn("cache admin id in redis failed", "error", err)
	}
}
