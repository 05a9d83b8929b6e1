package services

import (
	"context"
	"encoding/json"
	"time"

	"koi/dto"

	"github.com/redis/go-redis/v9"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.FarmSearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.FarmSearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.FarmSearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// Gộp yêu cầu cũ với yêu cầu mới, trường nào bỏ trống thì giữ lần trước
func MergeFilters(old *dto.FarmSearchFilters, new *dto.FarmSearchFilters) *dto.FarmSearchFilters {
	new.Query = orString(new.Query, old.Query)
	new.Province = orString(new.Province, old.Province)
	new.Variety = orString(new.Variety, old.Variety)
	return new
}

func orString(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
