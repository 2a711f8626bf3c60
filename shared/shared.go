package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"infopage/shared/cache"
	"infopage/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt64 parses a decimal integer, surrounding blanks allowed.
func ConvertStringToInt64(value string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to integer: %w", value, err)
	}

	return parsed, nil
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and the parts with colons.
func BuildCacheKey(prefix string, parts ...any) string {
	key := []string{prefix}
	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches drops every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := prefix + cacheKeySeparator + "*"

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}
