package cache

import (
	"context"
	"time"
)

// Cache 缓存接口
type Cache interface {
	// Get 获取缓存
	Get(ctx context.Context, key string) (string, error)

	// Set 设置缓存
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Delete 删除缓存
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern 按通配模式删除缓存
	DeletePattern(ctx context.Context, pattern string) error

	// Exists 检查key是否存在
	Exists(ctx context.Context, keys ...string) (int64, error)

	// GetJSON 获取JSON格式的缓存并反序列化
	GetJSON(ctx context.Context, key string, dest interface{}) error

	// SetJSON 序列化为JSON并设置缓存
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Ping 检查连接是否可用
	Ping(ctx context.Context) error

	// Close 关闭连接
	Close() error
}

// 缓存键名常量
const (
	// 教程相关缓存键
	RecipeListKey       = "recipes:page:%d:limit:%d:category:%s:difficulty:%s:search:%s:tags:%s:sort:%s" // 教程列表（规范化查询描述符）
	RecipeListPattern   = "recipes:*"                                                                    // 教程列表失效模式
	RecipeDetailIDKey   = "recipe:id:%s"                                                                 // 教程详情（按ID）
	RecipeDetailSlugKey = "recipe:slug:%s"                                                               // 教程详情（按slug）

	// 分类相关缓存键
	CategoryListKey   = "categories:all" // 分类列表
	CategoryDetailKey = "category:%s"    // 分类详情

	// 标签相关缓存键
	TagListKey = "tags:search:%s:limit:%d:popular:%t" // 标签列表

	// 用户相关缓存键
	UserProfileKey = "user:%s" // 用户公开资料
)

// 缓存过期时间常量
const (
	RecipeListExpiration   = 5 * time.Minute  // 教程列表缓存5分钟
	RecipeDetailExpiration = 10 * time.Minute // 教程详情缓存10分钟
	CategoryListExpiration = 30 * time.Minute // 分类列表缓存30分钟
	CategoryExpiration     = 30 * time.Minute // 分类详情缓存30分钟
	TagListExpiration      = 15 * time.Minute // 标签列表缓存15分钟
	UserProfileExpiration  = 10 * time.Minute // 用户资料缓存10分钟
)
