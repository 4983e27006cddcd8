package database

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis returns a client for the change-notification bus, or nil when no
// address is configured. Callers treat a nil client as "no live fan-out".
func NewRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}
