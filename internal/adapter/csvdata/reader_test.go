package csvdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-insights/internal/domain/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCitations(t *testing.T) {
	path := writeFile(t, "refs.csv", "\ufeffciting_paperid,cited_paperid,year,ref_year\n"+
		"p1,p2,2021,2019\n"+
		"p1,p3,2021.0,2018\n"+
		",p4,2022,2020\n"+
		"p5,p6,,2020\n"+
		"p7,p8,2023,n/a\n"+
		"p3,p2,2022,2019\n")

	batch, err := NewReader().ReadCitations(path)
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Skipped)
	assert.Equal(t, []model.CitationRecord{
		{CitingPaperID: "p1", CitedPaperID: "p2", Year: 2021, RefYear: 2019},
		{CitingPaperID: "p1", CitedPaperID: "p3", Year: 2021, RefYear: 2018},
		{CitingPaperID: "p3", CitedPaperID: "p2", Year: 2022, RefYear: 2019},
	}, batch.Records)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"2021", 2021, true},
		{" 2021.0 ", 2021, true},
		{"-1", -1, true},
		{"2021.5", 0, false},
		{"1e30", 0, false},
		{"-1e30", 0, false},
		{"NaN", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseInt(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCitationsSkipsOutOfRangeYears(t *testing.T) {
	path := writeFile(t, "refs.csv", "citing_paperid,cited_paperid,year,ref_year\nW1,W2,1e30,2019\nW3,W4,2021,2019\n")

	batch, err := NewReader().ReadCitations(path)
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)
	assert.Equal(t, "W3", batch.Records[0].CitingPaperID)
	assert.Equal(t, 1, batch.Skipped)
}

func TestReadCitationsColumnOrderIndependent(t *testing.T) {
	path := writeFile(t, "refs.csv", "year,ref_year,cited_paperid,citing_paperid,extra\n2020,2010,b,a,x\n")

	batch, err := NewReader().ReadCitations(path)
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)
	assert.Equal(t, model.CitationRecord{CitingPaperID: "a", CitedPaperID: "b", Year: 2020, RefYear: 2010}, batch.Records[0])
}

func TestReadCitationsMissingColumn(t *testing.T) {
	path := writeFile(t, "refs.csv", "citing_paperid,cited_paperid,year\na,b,2020\n")

	_, err := NewReader().ReadCitations(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "ref_year"`)
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	_, err := NewReader().ReadAffiliations(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDatasetNotFound))

	var dsErr *model.DatasetError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, model.DatasetAffiliations, dsErr.Dataset)
	assert.Equal(t, path, dsErr.Path)
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFile(t, "affils.csv", "")

	_, err := NewReader().ReadAffiliations(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrDatasetNotFound))
}

func TestReadAffiliations(t *testing.T) {
	path := writeFile(t, "affils.csv", "paperid,authorid,institutionid,author_position\n"+
		"w1, a1 ,i1,1\n"+
		"w1,a2,i1,middle\n"+
		"w1,a3,i2,last\n"+
		"w2,a1,i1,unknown\n"+
		"w2,,i1,2\n")

	batch, err := NewReader().ReadAffiliations(path)
	require.NoError(t, err)
	require.Len(t, batch.Records, 5)
	assert.Equal(t, 1, batch.Unpositioned)

	first := batch.Records[0]
	assert.Equal(t, "w1", first.PaperID)
	assert.Equal(t, "a1", first.AuthorID)
	assert.Equal(t, "i1", first.InstitutionID)
	require.NotNil(t, first.Position)
	assert.Equal(t, 1, *first.Position)

	require.NotNil(t, batch.Records[1].Position)
	assert.Equal(t, model.PositionMiddle, *batch.Records[1].Position)
	require.NotNil(t, batch.Records[2].Position)
	assert.Equal(t, model.PositionCorresponding, *batch.Records[2].Position)
	assert.Nil(t, batch.Records[3].Position)
	assert.Equal(t, "", batch.Records[4].AuthorID)
}
