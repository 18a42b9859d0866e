package listing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/kitforge/internal/kit"
	"github.com/llehouerou/kitforge/internal/mapping"
)

func testTable(t *testing.T) *mapping.Table {
	t.Helper()
	table, err := mapping.Parse(strings.NewReader("kick:36\nsnare:38\nhat:42\n"))
	require.NoError(t, err)
	return table
}

func TestSaveValid_LoadValid_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valid.json")
	kits := []kit.Kit{
		{Name: "909", Elements: []kit.Element{
			{Category: "hat", Files: []string{"/s/Hat 909 1.wav"}},
		}},
		{Name: "808", Elements: []kit.Element{
			{Category: "kick", Files: []string{"/s/Kick 808 1.wav", "/s/Kick 808 2.wav"}},
			{Category: "snare", Files: []string{"/s/Snare 808 1.wav"}},
		}},
	}

	require.NoError(t, SaveValid(path, kits))

	loaded, err := LoadValid(path, testTable(t))
	require.NoError(t, err)

	require.Len(t, loaded, 2)
	require.Equal(t, "808", loaded[0].Name, "kits should come back sorted by name")
	require.Equal(t, "909", loaded[1].Name)

	k808 := loaded[0]
	require.Len(t, k808.Elements, 2)
	require.Equal(t, []string{"/s/Kick 808 1.wav", "/s/Kick 808 2.wav"}, k808.Files("kick"),
		"file order must survive the round trip")
	require.Equal(t, []string{"/s/Snare 808 1.wav"}, k808.Files("snare"))
}

func TestLoadValid_ElementOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valid.json")
	doc := map[string]map[string][]string{
		"808": {
			"other": {"/s/x.wav"},
			"zing":  {"/s/z.wav"},
			"snare": {"/s/s.wav"},
			"amber": {"/s/a.wav"},
			"kick":  {"/s/k.wav"},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadValid(path, testTable(t))
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	var got []string
	for _, el := range loaded[0].Elements {
		got = append(got, el.Category)
	}
	require.Equal(t, []string{"kick", "snare", "amber", "zing", "other"}, got,
		"declaration order first, unknown categories sorted, other last")
}

func TestLoadValid_RejectsInvalidShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"top level array", `[1, 2]`},
		{"kit is not an object", `{"808": ["a.wav"]}`},
		{"category is not an array", `{"808": {"kick": "a.wav"}}`},
		{"file is not a string", `{"808": {"kick": [1]}}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "valid.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := LoadValid(path, testTable(t))
			require.Error(t, err)
		})
	}
}

func TestLoadValid_MissingFile(t *testing.T) {
	_, err := LoadValid(filepath.Join(t.TempDir(), "nope.json"), testTable(t))
	require.Error(t, err)
}

func TestSaveRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rejected.json")
	rejections := []kit.Rejection{
		{
			Kit: kit.Kit{Name: "thin", Elements: []kit.Element{
				{Category: "kick", Files: []string{"/s/Kick 1.wav"}},
			}},
			Reason: kit.ReasonTooFewSamples,
		},
		{
			Kit:    kit.Kit{Name: "fat", Elements: []kit.Element{{Category: "kick", Files: []string{"/s/a.wav"}}}},
			Reason: kit.ReasonOverflowOrOther,
			Details: kit.Details{
				Overflow: []kit.Overflow{{Category: "kick", Count: 9, Capacity: 8}},
			},
		},
	}

	require.NoError(t, SaveRejected(path, rejections))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]struct {
		Reason   string              `json:"reason"`
		Details  kit.Details         `json:"details"`
		Elements map[string][]string `json:"elements"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "too_few_samples", doc["thin"].Reason)

	fat := doc["fat"]
	require.Equal(t, "overflow_or_other", fat.Reason)
	require.Len(t, fat.Details.Overflow, 1)
	require.Equal(t, 8, fat.Details.Overflow[0].Capacity)
	require.Equal(t, []string{"/s/a.wav"}, fat.Elements["kick"])
}
