package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

func TestT(t *testing.T) {
	tests := []struct {
		lang i18n.Language
		key  string
		want string
	}{
		{i18n.English, "dashboard", "Dashboard"},
		{i18n.Hindi, "dashboard", "डैशबोर्ड"},
		{i18n.Telugu, "alerts", "హెచ్చరికలు"},
		{i18n.English, "loading", "Loading..."},
		{"fr", "risk_score", "Risk Score"},
		{"", "risk_score", "Risk Score"},
		{i18n.Hindi, "no_such_key", "no_such_key"},
		{"fr", "no_such_key", "no_such_key"},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang)+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.T(tt.lang, tt.key))
		})
	}
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "Low Risk", i18n.LevelLabel(i18n.English, scoring.RiskLow))
	assert.Equal(t, "Critical Risk", i18n.LevelLabel(i18n.English, scoring.RiskCritical))
	assert.Equal(t, "उच्च जोखिम", i18n.LevelLabel(i18n.Hindi, scoring.RiskHigh))
	assert.Equal(t, "మధ్యమ ప్రమాదం", i18n.LevelLabel(i18n.Telugu, scoring.RiskMedium))
	assert.Equal(t, "bogus_risk", i18n.LevelLabel(i18n.English, "bogus"))
}

func TestEveryKeyTranslated(t *testing.T) {
	for _, key := range i18n.Keys() {
		for _, lang := range i18n.Languages() {
			assert.NotEqual(t, key, i18n.T(lang, key), "%s missing %s translation", key, lang)
		}
	}
	for _, l := range scoring.Levels() {
		assert.True(t, i18n.Has(string(l)+"_risk"), "no label for level %s", l)
	}
}

func TestParseLanguage(t *testing.T) {
	l, err := i18n.ParseLanguage("")
	require.NoError(t, err)
	assert.Equal(t, i18n.English, l)

	l, err = i18n.ParseLanguage("te")
	require.NoError(t, err)
	assert.Equal(t, i18n.Telugu, l)

	_, err = i18n.ParseLanguage("EN")
	assert.Error(t, err)
}
