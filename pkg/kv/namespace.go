package kv

import "context"

type namespacedStore struct {
	impl   Store
	prefix string
}

func WithNamespace(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}

	return namespacedStore{impl: store, prefix: prefix}
}

func (s namespacedStore) Get(ctx context.Context, key string) (string, error) {
	return s.impl.Get(ctx, s.prefix+key)
}

func (s namespacedStore) Set(ctx context.Context, key, value string) error {
	return s.impl.Set(ctx, s.prefix+key, value)
}

func (s namespacedStore) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, s.prefix+key)
	}

	return s.impl.Delete(ctx, prefixed...)
}
