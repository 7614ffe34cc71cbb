package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher serves static documents and counts fetches per path.
type countingFetcher struct {
	docs   map[string][]byte
	errs   map[string]error
	counts sync.Map
}

func (f *countingFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	count, _ := f.counts.LoadOrStore(path, new(int64))
	atomic.AddInt64(count.(*int64), 1)
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	return f.docs[path], nil
}

func (f *countingFetcher) fetchCount(path string) int64 {
	count, ok := f.counts.Load(path)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(count.(*int64))
}

const tinyCourseDoc = `
<courses>
  <course id="1" slug="python-101" courseName="Python"></course>
  <course id="2" slug="java-201" courseName="Java"></course>
</courses>`

const tinyProgramDoc = `
<programs>
  <program>
    <name>Web Development</name>
    <level>Beginner</level>
  </program>
</programs>`

func newTestStore(fetcher Fetcher) *Store {
	return NewStore(fetcher, map[string]string{
		"all":        "courses.xml",
		"internship": "internships.xml",
	})
}

func TestStoreCoursesFetchesOnce(t *testing.T) {
	fetcher := &countingFetcher{docs: map[string][]byte{"courses.xml": []byte(tinyCourseDoc)}}
	store := newTestStore(fetcher)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		courses, err := store.Courses(ctx, "all")
		require.NoError(t, err)
		require.Len(t, courses, 2)
	}
	assert.Equal(t, int64(1), fetcher.fetchCount("courses.xml"))
}

func TestStoreCoursesConcurrentFirstLoad(t *testing.T) {
	fetcher := &countingFetcher{docs: map[string][]byte{"courses.xml": []byte(tinyCourseDoc)}}
	store := newTestStore(fetcher)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			courses, err := store.Courses(ctx, "all")
			assert.NoError(t, err)
			assert.Len(t, courses, 2)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), fetcher.fetchCount("courses.xml"))
}

func TestStoreCoursesUnknownSource(t *testing.T) {
	store := newTestStore(&countingFetcher{})
	_, err := store.Courses(context.Background(), "bogus")
	require.Error(t, err)
}

func TestStoreCoursesFetchErrorIsRetryable(t *testing.T) {
	fetcher := &countingFetcher{
		docs: map[string][]byte{"courses.xml": []byte(tinyCourseDoc)},
		errs: map[string]error{"courses.xml": errors.New("connection refused")},
	}
	store := newTestStore(fetcher)
	ctx := context.Background()

	_, err := store.Courses(ctx, "all")
	require.Error(t, err)

	// A failed fetch must not settle the slot: the next call retries.
	delete(fetcher.errs, "courses.xml")
	courses, err := store.Courses(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, int64(2), fetcher.fetchCount("courses.xml"))
}

func TestStoreCoursesMalformedSettlesEmpty(t *testing.T) {
	fetcher := &countingFetcher{docs: map[string][]byte{"courses.xml": []byte("<courses><course")}}
	store := newTestStore(fetcher)
	ctx := context.Background()

	courses, err := store.Courses(ctx, "all")
	require.NoError(t, err)
	assert.Empty(t, courses)

	// Malformed parses settle; no second fetch happens.
	_, err = store.Courses(ctx, "all")
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetcher.fetchCount("courses.xml"))
}

func TestStoreCourseBySlug(t *testing.T) {
	fetcher := &countingFetcher{docs: map[string][]byte{"courses.xml": []byte(tinyCourseDoc)}}
	store := newTestStore(fetcher)
	ctx := context.Background()

	course, err := store.CourseBySlug(ctx, "all", "python-101")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Python", course.CourseName)

	// Memoized lookups return equal results.
	again, err := store.CourseBySlug(ctx, "all", "python-101")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, *course, *again)

	missing, err := store.CourseBySlug(ctx, "all", "rust-999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, int64(1), fetcher.fetchCount("courses.xml"))
}

func TestStorePrograms(t *testing.T) {
	fetcher := &countingFetcher{docs: map[string][]byte{"internships.xml": []byte(tinyProgramDoc)}}
	store := newTestStore(fetcher)
	ctx := context.Background()

	programs, err := store.Programs(ctx, "internship")
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "Web Development", programs[0].Name)

	_, err = store.Programs(ctx, "internship")
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetcher.fetchCount("internships.xml"))
}
