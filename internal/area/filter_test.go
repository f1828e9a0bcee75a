package area

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var sample = Dataset{
	{Province: "Jawa Barat", Regency: "Bandung", AreaLabel: "Zona A"},
	{Province: "Jawa Timur", Regency: "Surabaya", AreaLabel: "Zona B"},
	{Province: "DKI Jakarta", Regency: "Jakarta Selatan", AreaLabel: "Zona A"},
	{Province: "Bali", Regency: "Badung", AreaLabel: "Zona C"},
	{Province: "Bali", Regency: "Badung", AreaLabel: "Zona C"},
	{Province: "Sumatera Utara", Regency: "Medan", AreaLabel: ""},
}

var queries = []string{
	"a", "jawa", "JAWA", "barat", "zona a", "ZONA C", "bad", "ung", "medan",
	"jakarta selatan", "x", "(", "zona a)", " ", "Bali",
}

func contains(r Record, q string) bool {
	q = strings.ToLower(q)
	for _, f := range r.Fields() {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	result := Filter(sample, "")
	require.Equal(t, sample, result)
	require.Same(t, &sample[0], &result[0])

	require.Nil(t, Filter(nil, ""))
}

func TestFilterSoundAndComplete(t *testing.T) {
	for _, q := range queries {
		result := Filter(sample, q)

		// every record kept matches, and the kept records are exactly the
		// matching ones, in source order
		var expected Dataset
		for _, r := range sample {
			if contains(r, q) {
				expected = append(expected, r)
			}
		}
		for _, r := range result {
			require.True(t, contains(r, q), "query %q kept %+v", q, r)
		}
		require.Equal(t, len(expected), len(result), "query %q", q)
		if len(expected) > 0 {
			require.Equal(t, expected, result, "query %q", q)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	for _, q := range queries {
		once := Filter(sample, q)
		twice := Filter(once, q)
		require.Equal(t, once, twice, "query %q", q)
	}
}

func TestFilterCases(t *testing.T) {
	testCases := []struct {
		query    string
		expected Dataset
	}{
		{
			query: "BARAT",
			expected: Dataset{
				{Province: "Jawa Barat", Regency: "Bandung", AreaLabel: "Zona A"},
			},
		},
		{
			query: "zona c",
			expected: Dataset{
				{Province: "Bali", Regency: "Badung", AreaLabel: "Zona C"},
				{Province: "Bali", Regency: "Badung", AreaLabel: "Zona C"},
			},
		},
		{
			query:    "papua",
			expected: Dataset{},
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Filter(sample, test.query))
	}
}

func TestHighlight(t *testing.T) {
	testCases := []struct {
		text     string
		query    string
		expected []Segment
	}{
		{
			text:     "Jabar",
			query:    "",
			expected: []Segment{{Text: "Jabar"}},
		},
		{
			text:  "Jabar",
			query: "ab",
			expected: []Segment{
				{Text: "J"},
				{Text: "ab", Match: true},
				{Text: "ar"},
			},
		},
		{
			text:  "Jawa Barat",
			query: "A",
			expected: []Segment{
				{Text: "J"},
				{Text: "a", Match: true},
				{Text: "w"},
				{Text: "a", Match: true},
				{Text: " B"},
				{Text: "a", Match: true},
				{Text: "r"},
				{Text: "a", Match: true},
				{Text: "t"},
			},
		},
		{
			text:  "BANDUNG",
			query: "bandung",
			expected: []Segment{
				{Text: "BANDUNG", Match: true},
			},
		},
		{
			text:     "Surabaya",
			query:    "zona",
			expected: []Segment{{Text: "Surabaya"}},
		},
		{
			text:  "Zona (A)",
			query: "(a)",
			expected: []Segment{
				{Text: "Zona "},
				{Text: "(A)", Match: true},
			},
		},
		{
			text:     "Zona A",
			query:    "(",
			expected: []Segment{{Text: "Zona A"}},
		},
		{
			text:     "",
			query:    "a",
			expected: []Segment{{Text: ""}},
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Highlight(test.text, test.query), "%q in %q", test.query, test.text)
	}
}

func TestHighlightRoundTrip(t *testing.T) {
	for _, r := range sample {
		for _, q := range queries {
			for _, field := range r.Fields() {
				var joined strings.Builder
				for _, seg := range Highlight(field, q) {
					joined.WriteString(seg.Text)
				}
				require.Equal(t, field, joined.String())
			}
		}
	}
}

func TestSuggest(t *testing.T) {
	suggestions := Suggest(sample, "jawa barta", 3)
	require.NotEmpty(t, suggestions)
	require.Equal(t, "Jawa Barat", suggestions[0])
	require.LessOrEqual(t, len(suggestions), 3)

	require.Empty(t, Suggest(sample, "zzzz", 3))
	require.Empty(t, Suggest(sample, "", 3))
	require.Empty(t, Suggest(sample, "bali", 0))

	// duplicates in the dataset are suggested once
	require.Equal(t, []string{"Bali"}, Suggest(sample, "bali", 1))

	// spellings differing only in case and spacing are suggested once
	spelled := Dataset{
		{Province: "Jawa Barat"},
		{Province: "JAWA  BARAT"},
	}
	require.Equal(t, []string{"Jawa Barat"}, Suggest(spelled, "jawa barat", 5))
}
