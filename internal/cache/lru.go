// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cache provides result caching for the MCP server.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache is a thread-safe LRU cache of tool results keyed by request.
type ResultCache[V any] struct {
	cache *lru.Cache[string, V]
}

// New creates a cache holding at most maxItems results.
func New[V any](maxItems int) (*ResultCache[V], error) {
	c, err := lru.New[string, V](maxItems)
	if err != nil {
		return nil, err
	}
	return &ResultCache[V]{cache: c}, nil
}

// Get returns the result stored under key.
func (c *ResultCache[V]) Get(key string) (V, bool) {
	return c.cache.Get(key)
}

// Put adds or replaces the result stored under key.
func (c *ResultCache[V]) Put(key string, v V) {
	c.cache.Add(key, v)
}

// Len returns the current number of items in the cache.
func (c *ResultCache[V]) Len() int {
	return c.cache.Len()
}

// Key returns the hex SHA-256 of the JSON encoding of namespace and request.
// Equal requests produce equal keys.
func Key(namespace string, request any) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(namespace))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
