package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/Tai-brother/UthMentor/internal/domain/review"
)

const ratingTTL = 5 * time.Minute

// Ratings caches the rounded average rating per mentor. Cache misses
// and redis failures fall through to the repository; a stale entry is
// bounded by the TTL and dropped eagerly on review submission.
type Ratings struct {
	rdb    *redis.Client
	repo   domain.Repository
	logger *zap.Logger
}

func NewRatings(rdb *redis.Client, repo domain.Repository, logger *zap.Logger) *Ratings {
	return &Ratings{rdb: rdb, repo: repo, logger: logger}
}

func ratingKey(mentorID uint) string {
	return fmt.Sprintf("rating:mentor:%d", mentorID)
}

func (c *Ratings) AverageRating(ctx context.Context, mentorID uint) (float64, error) {
	if c.rdb != nil {
		if v, err := c.rdb.Get(ctx, ratingKey(mentorID)).Result(); err == nil {
			if rating, perr := strconv.ParseFloat(v, 64); perr == nil {
				return rating, nil
			}
		}
	}

	avg, err := c.repo.AverageRating(ctx, mentorID)
	if err != nil {
		return 0, err
	}
	rating := domain.Round1(avg)

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, ratingKey(mentorID), strconv.FormatFloat(rating, 'f', 1, 64), ratingTTL).Err(); err != nil {
			c.logger.Warn("rating cache set failed", zap.Uint("mentor_id", mentorID), zap.Error(err))
		}
	}

	return rating, nil
}

func (c *Ratings) Invalidate(ctx context.Context, mentorID uint) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, ratingKey(mentorID)).Err(); err != nil {
		c.logger.Warn("rating cache invalidate failed", zap.Uint("mentor_id", mentorID), zap.Error(err))
		return err
	}
	return nil
}

// Compile-time check
var _ domain.RatingCache = (*Ratings)(nil)
