package catalog

import (
	"context"
	"sync"

	"enrollhub/internal/cache"
	"enrollhub/internal/domain"
	"enrollhub/internal/logger"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store owns the per-source catalog caches. A source is fetched and parsed at
// most once per process: the first call settles the cache slot and every later
// call returns the settled value. Concurrent first calls for the same source
// are collapsed by singleflight, so a parse runs once even under racing
// requesters. Fetch failures are not settled, which leaves a retry path open.
type Store struct {
	fetcher Fetcher
	sources map[string]string

	mu       sync.RWMutex
	courses  map[string][]domain.Course
	programs map[string][]domain.Program

	group     singleflight.Group
	slugCache *gocache.Cache
}

func NewStore(fetcher Fetcher, sources map[string]string) *Store {
	return &Store{
		fetcher:   fetcher,
		sources:   sources,
		courses:   make(map[string][]domain.Course),
		programs:  make(map[string][]domain.Program),
		slugCache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Courses returns the parsed course list for the given source key, fetching
// and parsing the backing document on first use only.
func (s *Store) Courses(ctx context.Context, source string) ([]domain.Course, error) {
	path, ok := s.sources[source]
	if !ok {
		return nil, domain.NewInvalidInputError("unknown catalog source: " + source)
	}

	s.mu.RLock()
	cached, settled := s.courses[source]
	s.mu.RUnlock()
	if settled {
		return cached, nil
	}

	result, err, _ := s.group.Do("courses:"+source, func() (interface{}, error) {
		// Re-check: a previous flight may have settled the slot.
		s.mu.RLock()
		cached, settled := s.courses[source]
		s.mu.RUnlock()
		if settled {
			return cached, nil
		}

		data, err := s.fetcher.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		courses := ParseCourses(data)
		if courses == nil {
			// Malformed document: settle as empty, matching "no entities".
			logger.Get().Warn("Catalog document did not parse",
				zap.String("source", source),
				zap.String("path", path),
			)
			courses = []domain.Course{}
		}

		s.mu.Lock()
		s.courses[source] = courses
		s.mu.Unlock()
		return courses, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Course), nil
}

// CourseBySlug returns the course with an exact slug match within the source,
// or nil when no course matches. The result is memoized per (source, slug).
func (s *Store) CourseBySlug(ctx context.Context, source, slug string) (*domain.Course, error) {
	key := cache.GenerateCacheKey("catalog", "course", source, slug)
	if hit, ok := s.slugCache.Get(key); ok {
		course := hit.(domain.Course)
		return &course, nil
	}

	courses, err := s.Courses(ctx, source)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].Slug == slug {
			s.slugCache.Set(key, courses[i], gocache.NoExpiration)
			course := courses[i]
			return &course, nil
		}
	}
	return nil, nil
}

// Programs returns the internship programs, parsed independently of the
// course caches from the source registered under the given key.
func (s *Store) Programs(ctx context.Context, source string) ([]domain.Program, error) {
	path, ok := s.sources[source]
	if !ok {
		return nil, domain.NewInvalidInputError("unknown catalog source: " + source)
	}

	s.mu.RLock()
	cached, settled := s.programs[source]
	s.mu.RUnlock()
	if settled {
		return cached, nil
	}

	result, err, _ := s.group.Do("programs:"+source, func() (interface{}, error) {
		s.mu.RLock()
		cached, settled := s.programs[source]
		s.mu.RUnlock()
		if settled {
			return cached, nil
		}

		data, err := s.fetcher.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		programs := ParsePrograms(data)
		if programs == nil {
			programs = []domain.Program{}
		}

		s.mu.Lock()
		s.programs[source] = programs
		s.mu.Unlock()
		return programs, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Program), nil
}
