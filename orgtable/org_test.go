package orgtable

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFrame(t *testing.T, rows [][]string, opts ...FrameOption) *Frame {
	t.Helper()
	f, err := FromRows(rows, opts...)
	require.NoError(t, err)
	return f
}

func TestToOrgSingleCell(t *testing.T) {
	f := mustFrame(t, [][]string{{"x"}, {"v"}})

	out, err := ToOrg(f, WithoutIndex())
	require.NoError(t, err)
	assert.Equal(t, "|x|\n|-----\n|v|\n", out)

	out, err = ToOrg(f)
	require.NoError(t, err)
	assert.Equal(t, "||x|\n|-----\n|1|v|\n", out)
}

func TestToOrgDirectives(t *testing.T) {
	f := mustFrame(t, [][]string{{"a"}, {"1"}})

	out, err := ToOrg(f, Name("tbl"), Caption("A caption"), Attr(":width 5cm"), WithoutIndex())
	require.NoError(t, err)

	expected := "#+ATTR_LATEX: :width 5cm\n" +
		"#+CAPTION: A caption\n" +
		"#+NAME: tbl\n" +
		"|a|\n|-----\n|1|\n"
	assert.Equal(t, expected, out)

	out, err = ToOrg(f, Name(""), Caption("only"), WithoutIndex())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#+CAPTION: only\n|a|"))
}

func TestToOrgHLines(t *testing.T) {
	f := mustFrame(t, [][]string{{"a"}, {"1"}, {"2"}, {"3"}})

	tests := []struct {
		name     string
		opt      OrgOption
		expected string
	}{
		{
			name:     "default rule after header",
			opt:      WithoutIndex(),
			expected: "|a|\n|-----\n|1|\n|2|\n|3|\n",
		},
		{
			name:     "before last line",
			opt:      HLines(-1),
			expected: "|a|\n|1|\n|2|\n|-----\n|3|\n",
		},
		{
			name:     "several positions",
			opt:      HLines(0, 1, -2),
			expected: "|-----\n|a|\n|-----\n|1|\n|-----\n|2|\n|3|\n",
		},
		{
			name:     "no rules",
			opt:      HLines(),
			expected: "|a|\n|1|\n|2|\n|3|\n",
		},
		{
			name:     "past the end",
			opt:      HLines(4, 9),
			expected: "|a|\n|1|\n|2|\n|3|\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToOrg(f, WithoutIndex(), tt.opt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestToOrgDates(t *testing.T) {
	f := mustFrame(t, [][]string{
		{"when", "what"},
		{"[2020-01-01 Wed]", "x"},
		{"", "y"},
	}, AutoDateCols())

	out, err := ToOrg(f)
	require.NoError(t, err)
	assert.Equal(t, "||when|what|\n|-----\n|1|2020-01-01|x|\n|2||y|\n", out)

	out, err = ToOrg(f, DateFormat("%d.%m.%Y"), WithoutIndex())
	require.NoError(t, err)
	assert.Equal(t, "|when|what|\n|-----\n|01.01.2020|x|\n||y|\n", out)
}

func TestToOrgNamedIndex(t *testing.T) {
	f := mustFrame(t, [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}, IndexName("a"))

	out, err := ToOrg(f)
	require.NoError(t, err)
	assert.Equal(t, "|a|b|\n|-----\n|1|2|\n|3|4|\n", out)
}

func TestToOrgQuoting(t *testing.T) {
	f := mustFrame(t, [][]string{{"cell"}, {"a|b"}, {`say "hi"`}, {""}})

	out, err := ToOrg(f, WithoutIndex(), HLines())
	require.NoError(t, err)
	assert.Equal(t, "|cell|\n|\"a|b\"|\n|\"say \"\"hi\"\"\"|\n|\"\"|\n", out)
}

func TestToOrgEncoding(t *testing.T) {
	f := mustFrame(t, [][]string{{"name"}, {"Müller"}})

	_, err := ToOrg(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))

	out, err := ToOrg(f, Encoding("utf-8"), WithoutIndex())
	require.NoError(t, err)
	assert.Equal(t, "|name|\n|-----\n|Müller|\n", out)

	_, err = ToOrg(f, Encoding("latin1"))
	assert.NoError(t, err)

	arrow := mustFrame(t, [][]string{{"dir"}, {"→"}})
	_, err = ToOrg(arrow, Encoding("latin1"))
	assert.True(t, errors.Is(err, ErrEncoding))

	_, err = ToOrg(f, Encoding("no-such-charset"))
	assert.True(t, errors.Is(err, ErrEncoding))
}

func TestToOrgLatin1IsNotWindows1252(t *testing.T) {
	price := mustFrame(t, [][]string{{"price"}, {"5 €"}})

	for _, name := range []string{"latin1", "iso-8859-1", "ISO_8859-1"} {
		_, err := ToOrg(price, Encoding(name))
		assert.True(t, errors.Is(err, ErrEncoding), "encoding %s", name)
	}

	_, err := ToOrg(price, Encoding("windows-1252"))
	assert.NoError(t, err)
}

func TestToOrgDirectivesSkipEncodingCheck(t *testing.T) {
	f := mustFrame(t, [][]string{{"a"}, {"1"}})

	out, err := ToOrg(f, Caption("Größe"), WithoutIndex())
	require.NoError(t, err)
	assert.Equal(t, "#+CAPTION: Größe\n|a|\n|-----\n|1|\n", out)
}

func TestValidEncoding(t *testing.T) {
	assert.True(t, ValidEncoding("ascii"))
	assert.True(t, ValidEncoding("UTF-8"))
	assert.True(t, ValidEncoding("windows-1252"))
	assert.False(t, ValidEncoding("klingon"))
}

func TestFixtureConversion(t *testing.T) {
	input, err := os.ReadFile("testdata/measurements.org")
	require.NoError(t, err)
	expected, err := os.ReadFile("testdata/measurements.expected.org")
	require.NoError(t, err)

	src, err := ParseOrg(string(input))
	require.NoError(t, err)

	f, err := FromRows(src.Rows, AutoDateCols(), IndexName("date"))
	require.NoError(t, err)

	out, err := ToOrg(f,
		Name(src.Name),
		Caption(src.Caption),
		Attr(src.Attr),
		DateFormat("%d.%m.%Y"),
		HLines(src.HLines...),
	)
	require.NoError(t, err)
	assert.Equal(t, string(expected), out)
}

func TestGenerateName(t *testing.T) {
	a, b := GenerateName(), GenerateName()
	assert.True(t, strings.HasPrefix(a, "tbl-"))
	assert.Len(t, a, len("tbl-")+8)
	assert.NotEqual(t, a, b)
}
