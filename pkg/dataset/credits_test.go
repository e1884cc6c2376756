package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tsv joins rows with tabs so test fixtures stay readable.
func tsv(rows ...[]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "\t")
	}
	return strings.Join(lines, "\n") + "\n"
}

func principalsFixture() string {
	return tsv(
		[]string{"tconst", "ordering", "nconst", "category", "job", "characters"},
		[]string{"tt1", "1", "nm1", "director", `\N`, `\N`},
		[]string{"tt1", "2", "nm2", "actor", `\N`, `["Hero"]`},
		[]string{"tt1", "3", "nm3", "actor", `\N`, `\N`},
		[]string{"tt1", "4", "nm4", "actress", `\N`, `\N`},
		[]string{"tt1", "5", "nm9", "cinematographer", `\N`, `\N`},
		[]string{"tt2", "1", "nm2", "actor", `\N`, `\N`},
		[]string{"tt2", "2", "nm5", "director", `\N`, `\N`},
	)
}

func TestReadCredits(t *testing.T) {
	path := writeFile(t, t.TempDir(), "principals.tsv", principalsFixture())

	table, err := ReadCredits(path, []string{"director", "actor", "actress"})
	require.NoError(t, err)

	assert.Equal(t, 7, table.RowsRead) // header not counted
	assert.Equal(t, 6, table.RowsKept) // cinematographer filtered out

	require.Len(t, table.Groups, 2)
	assert.Equal(t, "tt1", table.Groups[0].Key)
	assert.Equal(t, "tt2", table.Groups[1].Key)

	assert.Equal(t, map[string][]string{
		"director": {"nm1"},
		"actor":    {"nm2", "nm3"},
		"actress":  {"nm4"},
	}, table.Groups[0].Members)
	assert.Equal(t, map[string][]string{
		"actor":    {"nm2"},
		"director": {"nm5"},
	}, table.Groups[1].Members)
}

func TestReadCreditsGzip(t *testing.T) {
	path := writeGzipFile(t, t.TempDir(), "principals.tsv.gz", principalsFixture())

	table, err := ReadCredits(path, []string{"director"})
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowsKept)
	require.Len(t, table.Groups, 2)
}

func TestReadCreditsRoleFilter(t *testing.T) {
	path := writeFile(t, t.TempDir(), "principals.tsv", principalsFixture())

	table, err := ReadCredits(path, []string{"cinematographer"})
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowsKept)
	require.Len(t, table.Groups, 1)
	assert.Equal(t, []string{"nm9"}, table.Groups[0].Members["cinematographer"])
}

func TestReadCreditsDuplicateRowsCollapse(t *testing.T) {
	content := tsv(
		[]string{"tt1", "1", "nm1", "actor", `\N`, `\N`},
		[]string{"tt1", "2", "nm1", "actor", `\N`, `\N`},
		[]string{"tt1", "3", "nm1", "director", `\N`, `\N`}, // different category stays
	)
	path := writeFile(t, t.TempDir(), "principals.tsv", content)

	table, err := ReadCredits(path, []string{"actor", "director"})
	require.NoError(t, err)

	assert.Equal(t, 3, table.RowsRead)
	assert.Equal(t, 2, table.RowsKept)
	assert.Equal(t, []string{"nm1"}, table.Groups[0].Members["actor"])
	assert.Equal(t, []string{"nm1"}, table.Groups[0].Members["director"])
}

func TestReadCreditsNullPlaceholders(t *testing.T) {
	content := tsv(
		[]string{`\N`, "1", "nm1", "actor", `\N`, `\N`},
		[]string{"tt1", "2", `\N`, "actor", `\N`, `\N`},
		[]string{"tt1", "3", "nm2", "actor", `\N`, `\N`},
	)
	path := writeFile(t, t.TempDir(), "principals.tsv", content)

	table, err := ReadCredits(path, []string{"actor"})
	require.NoError(t, err)

	assert.Equal(t, 3, table.RowsRead)
	assert.Equal(t, 1, table.RowsKept)
	require.Len(t, table.Groups, 1)
	assert.Equal(t, []string{"nm2"}, table.Groups[0].Members["actor"])
}

func TestReadCreditsNoHeader(t *testing.T) {
	// Files without a header line must not lose their first row.
	content := tsv(
		[]string{"tt1", "1", "nm1", "actor", `\N`, `\N`},
		[]string{"tt1", "2", "nm2", "actor", `\N`, `\N`},
	)
	path := writeFile(t, t.TempDir(), "principals.tsv", content)

	table, err := ReadCredits(path, []string{"actor"})
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowsRead)
	assert.Equal(t, []string{"nm1", "nm2"}, table.Groups[0].Members["actor"])
}

func TestReadCreditsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"TooFewFields", "tt1\tnm1\n"},
		{"SingleField", "tt1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "principals.tsv", tt.content)
			_, err := ReadCredits(path, []string{"actor"})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReadCreditsNoRoles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "principals.tsv", principalsFixture())
	_, err := ReadCredits(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadLabelMap(t *testing.T) {
	content := tsv(
		[]string{"nconst", "primaryName", "birthYear"},
		[]string{"nm1", "Greta Gerwig", "1983"},
		[]string{"nm2", "Margot Robbie", "1990"},
		[]string{"nm3", `\N`, "1980"},
	)
	path := writeFile(t, t.TempDir(), "names.tsv", content)

	labels, err := ReadLabelMap(path, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"nm1": "Greta Gerwig",
		"nm2": "Margot Robbie",
	}, labels)
}

func TestReadLabelMapColumnSelection(t *testing.T) {
	content := tsv(
		[]string{"tconst", "titleType", "primaryTitle", "originalTitle"},
		[]string{"tt1", "movie", "Barbie", "Barbie"},
		[]string{"tt2", "movie", "Lady Bird", "Lady Bird"},
	)
	path := writeFile(t, t.TempDir(), "titles.tsv", content)

	labels, err := ReadLabelMap(path, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"tt1": "Barbie",
		"tt2": "Lady Bird",
	}, labels)
}

func TestReadLabelMapDuplicateKeyKeepsLast(t *testing.T) {
	content := tsv(
		[]string{"nm1", "First"},
		[]string{"nm1", "Second"},
	)
	path := writeFile(t, t.TempDir(), "names.tsv", content)

	labels, err := ReadLabelMap(path, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"nm1": "Second"}, labels)
}

func TestReadLabelMapErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("NegativeColumn", func(t *testing.T) {
		path := writeFile(t, dir, "a.tsv", "nm1\tX\n")
		_, err := ReadLabelMap(path, -1, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("RowTooShort", func(t *testing.T) {
		path := writeFile(t, dir, "b.tsv", "nm1\tX\n")
		_, err := ReadLabelMap(path, 0, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}
