package utils

import (
	"strings"
	"sync"
	"time"
)

// 进程内 TTL 缓存，主要给报表代理用：
// 上游报表接口较慢，仪表盘每次进来都打一轮太浪费
// 使用 sync.Map 保证并发安全
var (
	memoryCache sync.Map
)

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      string
	expiration int64
}

// SetCache 设置缓存，带过期时间
func SetCache(key string, value string, ttl time.Duration) {
	exp := time.Now().Add(ttl).UnixNano()

	memoryCache.Store(key, cacheItem{
		value:      value,
		expiration: exp,
	})
}

// GetCache 获取缓存并验证是否过期
func GetCache(key string) (string, bool) {
	val, ok := memoryCache.Load(key)
	if !ok {
		return "", false
	}

	item := val.(cacheItem)

	// 检查是否过期
	if time.Now().UnixNano() > item.expiration {
		memoryCache.Delete(key) // 懒删除
		return "", false
	}

	return item.value, true
}

// DeleteCache 删除缓存
func DeleteCache(key string) {
	memoryCache.Delete(key)
}

// DeleteCachePrefix 按前缀批量删除 (手动刷新报表时用)
func DeleteCachePrefix(prefix string) {
	memoryCache.Range(func(k, _ interface{}) bool {
		if key, ok := k.(string); ok && strings.HasPrefix(key, prefix) {
			memoryCache.Delete(k)
		}
		return true
	})
}
