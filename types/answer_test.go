package types

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	c, err := ParseCategory("category_2")
	require.NoError(t, err)
	assert.Equal(t, Category2, c)
	assert.Equal(t, "category_2", c.Key())

	for _, unset := range []string{"", "None", "  "} {
		c, err := ParseCategory(unset)
		require.NoError(t, err)
		assert.Equal(t, CategoryUnset, c)
		assert.Empty(t, c.Key())
	}

	r, err := ParseReportType("report_3")
	require.NoError(t, err)
	assert.Equal(t, ReportType3, r)

	i, err := ParseInjury("injury_1")
	require.NoError(t, err)
	assert.Equal(t, InjuryNone, i)
	assert.False(t, i.Bodily())

	i, err = ParseInjury("injury_4")
	require.NoError(t, err)
	assert.Equal(t, InjuryLostTime, i)
	assert.True(t, i.Bodily())
	assert.False(t, InjuryUnset.Bodily())

	for _, bad := range []string{"category_3", "category_0", "report_1", "category_x"} {
		_, err := ParseCategory(bad)
		assert.True(t, errors.Is(err, ErrInvalidInput), "tag %q", bad)
	}

	o, err := ParseOrgan("body_35")
	require.NoError(t, err)
	assert.Equal(t, "body_35", o.Key())
	_, err = ParseOrgan("body_36")
	assert.Error(t, err)

	s, ok := ParseSituation("situation_5")
	assert.True(t, ok)
	assert.Equal(t, Situation(5), s)
	_, ok = ParseSituation("forklift reversing")
	assert.False(t, ok)
}

func TestChecklistOrder(t *testing.T) {
	assert.Len(t, Categories(), CategoryCount)
	assert.Len(t, ReportTypes(), ReportTypeCount)
	assert.Len(t, Injuries(), InjuryCount)
	assert.Equal(t, "injury_1", Injuries()[0].Key())
	assert.Equal(t, "report_4", ReportTypes()[3].Key())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"fr", French},
		{"en", English},
		{"en-GB", English},
		{"de-AT", German},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLanguage("not a tag!")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Len(t, Languages(), 3)
	assert.Equal(t, "de", German.Tag().String())
}

func TestAnswer_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"category": "category_1",
		"report type": "report_3",
		"date": "12/03/2024",
		"hour": "14:05",
		"place": "Warehouse B",
		"equipment": "Forklift",
		"people": "J. Martin",
		"situation": ["situation_5", "situation_30", "pallet fell", "situation_12"],
		"description": "Load shifted\u200e while turning",
		"injury": "injury_2",
		"organs": ["body_10", "body_3"],
		"comments": "Area closed",
		"logo": "",
		"attachment": ["b.png", "a.jpg"],
		"save": "/tmp/out",
		"name": "report.pdf"
	}`)

	var a Answer
	require.NoError(t, json.Unmarshal(data, &a))

	assert.Equal(t, Category1, a.Category)
	assert.Equal(t, ReportType3, a.ReportType)
	assert.Equal(t, []Situation{5, 12}, a.Situations)
	assert.Equal(t, "pallet fell", a.Other)
	assert.True(t, a.HasSituation(SituationOther))
	assert.True(t, a.HasSituation(12))
	assert.False(t, a.HasSituation(13))
	assert.Equal(t, "Load shifted while turning", a.Description)
	assert.Equal(t, InjuryFirstAid, a.Injury)
	assert.Equal(t, []Organ{10, 3}, a.Organs)
	assert.Equal(t, []string{"b.png", "a.jpg"}, a.Attachments)
	assert.Equal(t, filepath.Join("/tmp/out", "report.pdf"), a.Destination())
	assert.NoError(t, a.Validate())
}

func TestAnswer_UnmarshalJSON_Unset(t *testing.T) {
	var a Answer
	require.NoError(t, json.Unmarshal([]byte(`{"category":"None","report type":"","injury":"None","situation":["situation_30"]}`), &a))

	assert.Equal(t, CategoryUnset, a.Category)
	assert.Equal(t, ReportTypeUnset, a.ReportType)
	assert.Equal(t, InjuryUnset, a.Injury)
	assert.Empty(t, a.Situations)
	assert.False(t, a.HasSituation(SituationOther))
}

func TestAnswer_UnmarshalJSON_Errors(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"category": 3}`,
		"bad category":  `{"category": "category_7"}`,
		"bad organ":     `{"injury": "injury_2", "organs": ["knee"]}`,
		"two free text": `{"situation": ["one", "two"]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			var a Answer
			err := json.Unmarshal([]byte(data), &a)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestAnswer_Validate(t *testing.T) {
	valid := Answer{Injury: InjuryMedical, Organs: []Organ{1, 2}, Situations: []Situation{1, 29}}
	assert.NoError(t, valid.Validate())

	cases := map[string]Answer{
		"organs without injury":  {Injury: InjuryNone, Organs: []Organ{4}},
		"organs with unset":      {Organs: []Organ{4}},
		"duplicate organ":        {Injury: InjuryMedical, Organs: []Organ{4, 4}},
		"duplicate situation":    {Situations: []Situation{3, 3}},
		"other stored as tag":    {Situations: []Situation{SituationOther}},
		"category out of range":  {Category: Category(9)},
		"organ out of range":     {Injury: InjuryMedical, Organs: []Organ{36}},
		"situation out of range": {Situations: []Situation{0}},
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(a.Validate(), ErrInvalidInput))
		})
	}
}

func TestDefaultFileName(t *testing.T) {
	assert.Equal(t, "Report_12-03-2024.pdf", DefaultFileName("Report", "12/03/2024"))
}
