package icd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/icd-converter/internal/config"
	"github.com/oshokin/icd-converter/internal/icd"
	"github.com/oshokin/icd-converter/internal/logger"
)

// Searcher finds mappings in the published JSON document.
type Searcher interface {
	// Search returns the mappings containing query in any field.
	Search(ctx context.Context, query string) ([]*icd.Mapping, error)
}

// SearcherImpl loads the published mappings once and caches query results.
type SearcherImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// mappings is the loaded document.
	mappings []*icd.Mapping
	// loadOnce guards loading of the document.
	loadOnce sync.Once
	// loadErr is the error of the first load.
	loadErr error
	// resultsCache maps normalized queries to their results.
	resultsCache *lru.Cache[string, []*icd.Mapping]
}

// NewSearcher creates a searcher over the configured output document.
func NewSearcher(cfg *config.Config) (Searcher, error) {
	resultsCache, err := lru.New[string, []*icd.Mapping](int(cfg.SearchCacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}

	return &SearcherImpl{
		cfg:          cfg,
		resultsCache: resultsCache,
	}, nil
}

// Search returns the mappings containing query in any field.
// The document is read on the first call.
func (s *SearcherImpl) Search(ctx context.Context, query string) ([]*icd.Mapping, error) {
	s.loadOnce.Do(func() {
		s.mappings, s.loadErr = s.load(ctx)
	})

	if s.loadErr != nil {
		return nil, s.loadErr
	}

	key := icd.NormalizeQuery(strings.TrimSpace(query))

	if results, ok := s.resultsCache.Get(key); ok {
		logger.Debugf(ctx, "Query '%s' served from cache", query)

		return results, nil
	}

	results := icd.Search(s.mappings, query)
	s.resultsCache.Add(key, results)

	logger.Debugf(ctx, "Query '%s' matched %d of %d mappings", query, len(results), len(s.mappings))

	return results, nil
}

func (s *SearcherImpl) load(ctx context.Context) ([]*icd.Mapping, error) {
	path := s.cfg.OutputPath

	if err := checkInputFile(ctx, path, s.cfg.ParsedMaxInputSize); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open mappings file: %w", err)
	}

	defer file.Close() //nolint:errcheck // The file is only read.

	mappings, err := icd.ReadJSON(file)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Loaded %d mappings from '%s'", len(mappings), path)

	return mappings, nil
}
