package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muhamadnurizanfakir/school-timetable/config"
)

// Client Redis 客户端封装
// 承担三类职责：Token 黑名单、限流滑动窗口、课表变更事件广播
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token 黑名单 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken 将 JWT ID 加入黑名单，TTL 与 Token 剩余有效期一致
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Token 已过期，无需加入黑名单
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted 检查 JWT ID 是否在黑名单中
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 限流滑动窗口 ──

// CheckRateLimit 固定窗口计数限流：窗口内第 limit+1 次请求起拒绝
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		// 首次命中时设置窗口过期
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// ── 课表变更事件广播 ──
//
// 每次时段增删改都向 person 维度的频道发布一条完整事件，
// SSE 端按频道订阅后原样转发给浏览器。事件本身自包含，
// 订阅方收到后整表重拉/重算，无需保证投递顺序。

const changeChannelPrefix = "timetable:changes:"

// ChangeChannel 返回某人课表的变更频道名
func ChangeChannel(personID string) string {
	return changeChannelPrefix + personID
}

// PublishChange 发布一条课表变更事件（payload 为 JSON 文本）
func (c *Client) PublishChange(ctx context.Context, personID string, payload []byte) error {
	return c.rdb.Publish(ctx, ChangeChannel(personID), payload).Err()
}

// SubscribeChanges 订阅某人课表的变更频道
// 返回的 PubSub 由调用方负责 Close
func (c *Client) SubscribeChanges(ctx context.Context, personID string) *goredis.PubSub {
	return c.rdb.Subscribe(ctx, ChangeChannel(personID))
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
