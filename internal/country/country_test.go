package country

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverSortedByName(t *testing.T) {
	r := NewResolver("in")
	records := r.All()
	require.NotEmpty(t, records)
	assert.True(t, sort.SliceIsSorted(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	}))
}

func TestResolverStripsRegionSuffix(t *testing.T) {
	r := NewResolver("in")
	for _, record := range r.All() {
		assert.NotContains(t, record.Name, " (")
	}
	// The stripped names still resolve.
	assert.True(t, r.IsValid("Congo"))
	assert.True(t, r.IsValid("Korea"))
}

func TestResolverDefault(t *testing.T) {
	r := NewResolver("in")
	record, ok := r.Default()
	require.True(t, ok)
	assert.Equal(t, "India", record.Name)
	assert.Equal(t, "91", record.DialCode)
	assert.Equal(t, "+91", Prefix(record))
}

func TestResolverDefaultUnknown(t *testing.T) {
	r := NewResolver("zz")
	_, ok := r.Default()
	assert.False(t, ok)
}

func TestResolverSearch(t *testing.T) {
	r := NewResolver("in")

	tests := []struct {
		name     string
		term     string
		contains string
	}{
		{"exact name", "India", "India"},
		{"case insensitive", "india", "India"},
		{"substring", "ndi", "India"},
		{"padded term", "  india  ", "India"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := r.Search(tt.term)
			require.NotEmpty(t, results)
			names := make([]string, len(results))
			for i, rec := range results {
				names[i] = rec.Name
			}
			assert.Contains(t, names, tt.contains)
		})
	}

	assert.Empty(t, r.Search("xyzzy"))
	assert.Equal(t, r.All(), r.Search(""))
}

func TestResolverByName(t *testing.T) {
	r := NewResolver("in")

	record, ok := r.ByName("india")
	require.True(t, ok)
	assert.Equal(t, "in", record.ISO2)

	_, ok = r.ByName("Atlantis")
	assert.False(t, ok)

	assert.True(t, r.IsValid("India"))
	assert.False(t, r.IsValid(""))
}
