// Package eino 提供 Eino 模型调用的全局观测回调
package eino

import (
	"context"
)

type providerKey struct{}

// WithProvider 将提供商名称注入 Context，供回调打标
func WithProvider(ctx context.Context, provider string) context.Context {
	return context.WithValue(ctx, providerKey{}, provider)
}

// ProviderFromContext 获取 Context 中的提供商名称
func ProviderFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(providerKey{}).(string); ok {
		return v
	}
	return "unknown"
}
