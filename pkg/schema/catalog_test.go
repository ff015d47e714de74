package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesForKnownDataset(t *testing.T) {
	overrides := Default.OverridesFor("certificates")
	require.NotEmpty(t, overrides)

	// Identifier that looks numeric but must stay textual
	assert.Equal(t, TypeString, overrides["LMK_KEY"])
	// Documented as int, observed as floating text
	assert.Equal(t, TypeFloat64, overrides["MULTI_GLAZE_PROPORTION"])
	assert.Equal(t, TypeFloat64, overrides["EXTENSION_COUNT"])
	// Temporal columns
	assert.Equal(t, TypeDate, overrides["INSPECTION_DATE"])
	assert.Equal(t, TypeTimestamp, overrides["LODGEMENT_DATETIME"])
}

func TestOverridesForRecommendations(t *testing.T) {
	overrides := Default.OverridesFor("recommendations")
	require.Len(t, overrides, 7)
	assert.Equal(t, TypeString, overrides["LMK_KEY"])
	assert.Equal(t, TypeInt64, overrides["IMPROVEMENT_ITEM"])
	assert.Equal(t, TypeString, overrides["INDICATIVE_COST"])
}

func TestOverridesForUnknownDataset(t *testing.T) {
	overrides := Default.OverridesFor("nonexistent")
	require.NotNil(t, overrides)
	assert.Empty(t, overrides)
}

func TestDatasets(t *testing.T) {
	ids := Default.Datasets()
	assert.ElementsMatch(t, []string{"certificates", "recommendations"}, ids)
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "int64", TypeInt64.String())
	assert.Equal(t, "float64", TypeFloat64.String())
	assert.Equal(t, "date", TypeDate.String())
	assert.Equal(t, "timestamp", TypeTimestamp.String())
}
