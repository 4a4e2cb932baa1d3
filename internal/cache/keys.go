package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix  = "user:%d"
	CategoriesKey  = "taxonomy:categories"
	TagsKey        = "taxonomy:tags"
	DashboardKey   = "admin:dashboard"
	TokenDenyBase  = "blacklist:%s"
)

const (
	UserTTL      = 5 * time.Minute
	TaxonomyTTL  = 10 * time.Minute
	DashboardTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// TokenDenyKey is the blacklist entry for a revoked JWT ID.
func TokenDenyKey(jti string) string {
	return fmt.Sprintf(TokenDenyBase, jti)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateTaxonomy drops the cached category and tag listings, e.g. after a
// post create/update introduced new names.
func InvalidateTaxonomy(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
	Invalidate(ctx, TagsKey)
}
