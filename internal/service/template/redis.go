package template

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/osh-notification/internal/errs"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	CatalogKey             = "email:templates"
	defaultLocalExpiration = time.Minute
)

// setMembership *redis.Client 中用到的部分
type setMembership interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// RedisCatalog 模板集合保存在 Redis 的 set 中，由邮件服务维护，本地缓存查询结果
type RedisCatalog struct {
	rdb   setMembership
	key   string
	local *ca.Cache
}

func NewRedisCatalog(rdb redis.Cmdable) *RedisCatalog {
	return newRedisCatalog(rdb, CatalogKey, defaultLocalExpiration)
}

func newRedisCatalog(rdb setMembership, key string, expiration time.Duration) *RedisCatalog {
	return &RedisCatalog{
		rdb:   rdb,
		key:   key,
		local: ca.New(expiration, 2*expiration),
	}
}

func (r *RedisCatalog) Exists(ctx context.Context, name string) (bool, error) {
	if v, ok := r.local.Get(name); ok {
		return v.(bool), nil
	}
	ok, err := r.rdb.SIsMember(ctx, r.key, name).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", errs.ErrTemplateCatalog, err)
	}
	r.local.SetDefault(name, ok)
	return ok, nil
}
