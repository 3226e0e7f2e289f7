package adapter

import (
	"bytes"
	"math"
	"strings"
	"testing"

	m "github.com/mouse-blink/almanac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() m.AlmanacDocument {
	return m.AlmanacDocument{
		File:  "almanac.txt",
		Seeds: []uint64{79, 14},
		Stages: []m.StageDocument{
			{
				Name:     "seed-to-soil",
				From:     "seed",
				To:       "soil",
				Coverage: 50,
				Rules: []m.RuleDocument{
					{Destination: 50, Source: 98, Length: 2},
					{Destination: 52, Source: 50, Length: 48},
				},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json":  FormatJSON,
		".JSON": FormatJSON,
		"yaml":  FormatYAML,
		"yml":   FormatYAML,
		"toml":  FormatTOML,
	}

	for name, want := range tests {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	got, err := FormatFromPath("out/report.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = FormatFromPath("report")
	assert.Error(t, err)
}

func TestEncodeDecode_Document(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, sampleDocument()))
			assert.Contains(t, buf.String(), "seed-to-soil")

			var got m.AlmanacDocument
			require.NoError(t, Decode(&buf, format, &got))
			assert.Equal(t, sampleDocument(), got)
		})
	}
}

func TestEncode_YAMLLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, sampleDocument()))

	assert.True(t, strings.HasPrefix(buf.String(), "file: almanac.txt\n"), buf.String())
	assert.Contains(t, buf.String(), "  - name: seed-to-soil\n")
}

func TestEncode_TOMLRejectsHugeIntegers(t *testing.T) {
	doc := m.AlmanacDocument{Seeds: []uint64{math.MaxUint64}}

	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, FormatTOML, doc))
	assert.NoError(t, Encode(&buf, FormatJSON, doc))
}

func TestEncodeDecode_UnsupportedFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, Format("xml"), sampleDocument()))
	assert.Error(t, Decode(strings.NewReader(""), Format("xml"), &m.AlmanacDocument{}))
}

func TestDecode_Malformed(t *testing.T) {
	err := Decode(strings.NewReader("{"), FormatJSON, &m.AlmanacDocument{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode JSON")
}
