package store

import (
	"context"
	"sort"
	"sync"

	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/pkg/logger_i"
)

// InMemoryDocumentRegistry is the fallback when redis is unreachable. Same
// contract, no persistence.
type InMemoryDocumentRegistry struct {
	docLock *sync.RWMutex
	docs    map[string]docModel.DocumentInfo
	logger  *logger_i.Logger
}

func InitInMemoryDocumentRegistry() *InMemoryDocumentRegistry {
	return &InMemoryDocumentRegistry{
		docLock: new(sync.RWMutex),
		docs:    make(map[string]docModel.DocumentInfo),
		logger:  logger_i.NewLogger("InMem Registry"),
	}
}

func (store *InMemoryDocumentRegistry) SaveDocument(ctx context.Context, info docModel.DocumentInfo) error {
	store.docLock.Lock()
	defer store.docLock.Unlock()
	store.docs[info.Filename] = info
	store.logger.Debug("Recorded document", "filename", info.Filename)
	return nil
}

func (store *InMemoryDocumentRegistry) ListDocuments(ctx context.Context) ([]docModel.DocumentInfo, error) {
	store.docLock.RLock()
	defer store.docLock.RUnlock()

	infos := make([]docModel.DocumentInfo, 0, len(store.docs))
	for _, info := range store.docs {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Filename < infos[j].Filename })
	return infos, nil
}

func (store *InMemoryDocumentRegistry) Clear(ctx context.Context) error {
	store.docLock.Lock()
	defer store.docLock.Unlock()
	store.docs = make(map[string]docModel.DocumentInfo)
	return nil
}
