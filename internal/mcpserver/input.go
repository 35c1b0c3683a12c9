package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/oasdotnet"
)

// specInput is how a tool receives an OpenAPI document.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI 2.0 or 3.x document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// cacheEntry holds one parsed document. lastUsed drives LRU eviction.
type cacheEntry struct {
	result    *parser.ParseResult
	lastUsed  time.Time
	expiresAt time.Time
}

// specCacheStore caches parsed documents for the lifetime of the server.
// Keys:
//
//	file:<abs path>:<mtime>   file inputs, invalidated when the file changes
//	url:<url>                 URL inputs
//	content:<sha256>          inline content
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are dropped on access.
func (c *specCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.lastUsed = now
	return e.result
}

// put stores result for ttl, evicting the least recently used entry when full.
func (c *specCacheStore) put(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{result: result, lastUsed: now, expiresAt: now.Add(ttl)}
}

func (c *specCacheStore) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.lastUsed.Before(oldest) {
			oldestKey, oldest = k, e.lastUsed
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// sweep removes all expired entries.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper runs sweep every interval until ctx is cancelled.
// Only the first call starts a goroutine.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// count returns how many of the three sources are set.
func (s specInput) count() int {
	n := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			n++
		}
	}
	return n
}

// cacheKey returns the cache key and TTL for s, or "" when s cannot be cached.
func (s specInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:]), cfg.CacheContentTTL
	default:
		return "", 0
	}
}

func (s specInput) parserOptions() []parser.Option {
	opts := []parser.Option{parser.WithUserAgent(oasdotnet.UserAgent())}
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL))
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	case s.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}
	return opts
}

// resolve parses the document, consulting the cache first.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if n := s.count(); n != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", n)
	}
	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASDOTNET_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	result, err := parser.ParseWithOptions(s.parserOptions()...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		specCache.put(key, result, ttl)
	}
	return result, nil
}
