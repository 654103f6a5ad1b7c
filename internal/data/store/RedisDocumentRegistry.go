package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/data/redisStore"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/pkg/logger_i"
)

const (
	documentSetKey    = "documents"
	documentKeyPrefix = "document:"
)

// RedisDocumentRegistry records which files have been ingested. Entries carry
// a TTL; the set under documentSetKey is the index and is repaired lazily
// when entries expire out from under it.
type RedisDocumentRegistry struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocumentRegistry(ctx context.Context, addr string) *RedisDocumentRegistry {
	inner := redisStore.GetRedisStore(ctx, addr, config.RedisRegistryStore)
	if inner == nil {
		return nil
	}
	return &RedisDocumentRegistry{
		store:  inner,
		logger: logger_i.NewLogger("DocumentRegistry"),
	}
}

func (s *RedisDocumentRegistry) SaveDocument(ctx context.Context, info docModel.DocumentInfo) error {
	log := s.logger.ForTrace(ctx).With("filename", info.Filename)

	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, documentKeyPrefix+info.Filename, data, config.RedisRegistryTTL); err != nil {
		return err
	}
	if err := s.store.SAdd(ctx, documentSetKey, info.Filename); err != nil {
		return err
	}
	log.Debug("Recorded document")
	return nil
}

func (s *RedisDocumentRegistry) ListDocuments(ctx context.Context) ([]docModel.DocumentInfo, error) {
	names, err := s.store.SMembers(ctx, documentSetKey)
	if err != nil {
		return nil, err
	}

	infos := make([]docModel.DocumentInfo, 0, len(names))
	for _, name := range names {
		val, err := s.store.Get(ctx, documentKeyPrefix+name)
		if s.store.IsNil(err) {
			// Entry expired; drop it from the index too.
			_ = s.store.SRem(ctx, documentSetKey, name)
			continue
		}
		if err != nil {
			return nil, err
		}
		var info docModel.DocumentInfo
		if err := json.Unmarshal([]byte(val), &info); err != nil {
			s.logger.Error("Corrupt registry entry", "filename", name, "error", err)
			continue
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Filename < infos[j].Filename })
	return infos, nil
}

func (s *RedisDocumentRegistry) Clear(ctx context.Context) error {
	names, err := s.store.SMembers(ctx, documentSetKey)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(names)+1)
	for _, name := range names {
		keys = append(keys, documentKeyPrefix+name)
	}
	keys = append(keys, documentSetKey)
	return s.store.Del(ctx, keys...)
}

func TestDocumentRegistry(store *redisStore.Store) *RedisDocumentRegistry {
	return &RedisDocumentRegistry{
		store:  store,
		logger: logger_i.NewLogger("test registry"),
	}
}
