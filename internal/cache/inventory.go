package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	HabitStreakKeyPrefix = "habit:%d:streak:%s"
)

const (
	UserTTL        = 5 * time.Minute
	HabitStreakTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// HabitStreakKey is scoped to a civil date: CurrentStreak depends on what
// "today" is, so a snapshot cached before UTC midnight must not be served
// after it. Stale keys from previous days simply age out.
func HabitStreakKey(habitID uint, day time.Time) string {
	return fmt.Sprintf(HabitStreakKeyPrefix, habitID, day.UTC().Format("2006-01-02"))
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateHabitStreak drops today's cached streak snapshot after any
// check-in mutation so the next read recomputes from the database. Any
// mutation, even of a past date, can change today's snapshot.
func InvalidateHabitStreak(ctx context.Context, habitID uint) {
	Invalidate(ctx, HabitStreakKey(habitID, time.Now().UTC()))
}
