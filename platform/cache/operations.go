// Package cache keeps serialized game-state snapshots in redis so state
// reads skip the relational store. Mutating actions invalidate the entry;
// the store stays the source of truth.
package cache

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

const snapshotTTL = 5 * time.Minute

var pool *redis.Pool

// Init wires the shared pool. Call once from main when Enabled().
func Init(p *redis.Pool) {
	pool = p
}

func snapshotKey(gameID string) string {
	return fmt.Sprintf("game.%s.state", gameID)
}

// GetSnapshot returns the cached snapshot JSON, "" on miss or when the
// cache is not configured.
func GetSnapshot(gameID string) string {
	if pool == nil {
		return ""
	}
	conn := pool.Get()
	defer conn.Close()
	data, err := redis.String(conn.Do("GET", snapshotKey(gameID)))
	if err != nil {
		if err != redis.ErrNil {
			logrus.WithError(err).Debug("snapshot cache read failed")
		}
		return ""
	}
	return data
}

// SetSnapshot stores the snapshot JSON with a TTL. Best effort.
func SetSnapshot(gameID string, data string) {
	if pool == nil {
		return
	}
	conn := pool.Get()
	defer conn.Close()
	if _, err := conn.Do("SET", snapshotKey(gameID), data, "EX", int(snapshotTTL.Seconds())); err != nil {
		logrus.WithError(err).Debug("snapshot cache write failed")
	}
}

// Invalidate drops a game's snapshot after any mutating action.
func Invalidate(gameID string) {
	if pool == nil {
		return
	}
	conn := pool.Get()
	defer conn.Close()
	if _, err := conn.Do("DEL", snapshotKey(gameID)); err != nil {
		logrus.WithError(err).Debug("snapshot cache invalidation failed")
	}
}
