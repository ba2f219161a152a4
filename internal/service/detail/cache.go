package detail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func entryKey(id uuid.UUID) string {
	return fmt.Sprintf("detail:entry:%s", id)
}

func personKey(id uuid.UUID) string {
	return fmt.Sprintf("detail:person:%s", id)
}

// InvalidateEntry drops the cached detail view for one entry. Safe to call
// with a nil client; cache misses just rebuild the view.
func InvalidateEntry(ctx context.Context, rdb *redis.Client, id uuid.UUID) {
	if rdb != nil {
		_ = rdb.Del(ctx, entryKey(id)).Err()
	}
}

func InvalidatePerson(ctx context.Context, rdb *redis.Client, id uuid.UUID) {
	if rdb != nil {
		_ = rdb.Del(ctx, personKey(id)).Err()
	}
}
