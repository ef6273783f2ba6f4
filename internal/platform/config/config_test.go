package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ERP_BASE_URL", "http://erp.local/api/v1/")
	t.Setenv("JWT_SECRET", "jwt-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://erp.local/api/v1", cfg.ERPBaseURL)
	assert.Equal(t, int64(11), cfg.ERP.ClientID)
	assert.Equal(t, int64(11), cfg.ERP.OrgID)
	assert.Equal(t, int64(101), cfg.ERP.AcctSchemaID)
	assert.Equal(t, int64(115), cfg.ERP.DocTypeID)
	assert.Equal(t, int64(1000000), cfg.ERP.GLCategoryID)
	assert.Equal(t, int64(100), cfg.ERP.CurrencyID)
	assert.Equal(t, "A", cfg.ERP.PostingType)
	assert.Equal(t, 30*time.Second, cfg.ERP.TimeoutPerReq)
	assert.True(t, cfg.CleanupEmptyHeader)
	assert.False(t, cfg.RejectDuplicates)
	assert.Equal(t, "7", cfg.Classification.RevenuePrefix)
	assert.Equal(t, []string{"600000", "600100", "600200"}, cfg.Classification.ExpenseCodes)
	assert.Equal(t, "jwt-secret", cfg.SessionSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ERP_TIMEOUT", "5s")
	t.Setenv("ERP_GL_CATEGORY_ID", "42")
	t.Setenv("JOURNAL_REJECT_DUPLICATES", "true")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("SESSION_SECRET", "sealer-key")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.ERP.TimeoutPerReq)
	assert.Equal(t, int64(42), cfg.ERP.GLCategoryID)
	assert.True(t, cfg.RejectDuplicates)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "sealer-key", cfg.SessionSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestERPConstants_Location(t *testing.T) {
	assert.Equal(t, time.UTC, ERPConstants{}.Location())
	assert.Equal(t, time.UTC, ERPConstants{TimezoneName: "Not/AZone"}.Location())
	assert.Equal(t, "Europe/Paris", ERPConstants{TimezoneName: "Europe/Paris"}.Location().String())
}
