package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeLoadsEmbeddedLocales(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, []string{"en", "es"}, GetSupportedLanguages())
	assert.True(t, Supported("es"))
	assert.False(t, Supported("fr"))
	assert.Equal(t, "Product 'Widget' added with ID 1.", T("en", KeyProductCreated, "Widget", 1))
	assert.Equal(t, "Producto no encontrado.", T("es", KeyProductNotFound))
}

func TestTFallsBackToDefaultLanguage(t *testing.T) {
	tr := New("en")
	fsys := fstest.MapFS{
		"l/en.json": {Data: []byte(`{"greeting":"hello %s","only.en":"english"}`)},
		"l/es.json": {Data: []byte(`{"greeting":"hola %s"}`)},
	}
	require.NoError(t, tr.LoadTranslations(fsys, "l"))

	assert.Equal(t, "hola Ana", tr.T("es", "greeting", "Ana"))
	assert.Equal(t, "english", tr.T("es", "only.en"))
	assert.Equal(t, "missing.key", tr.T("es", "missing.key"))
}

func TestEveryKeyIsTranslated(t *testing.T) {
	require.NoError(t, Initialize())

	en := instance.translations["en"]
	es := instance.translations["es"]
	require.NotEmpty(t, en)

	for key := range en {
		assert.Contains(t, es, key, "%s missing in es", key)
	}
	for key := range es {
		assert.Contains(t, en, key, "%s missing in en", key)
	}

	keys := []string{
		KeyInputEmpty, KeyInputInteger, KeyInputNumber, KeyInputMinimum, KeyInputTooLong, KeyMenuInvalid,
		KeyAppGoodbye, KeyAppUnexpected, KeyAppInterrupted, KeyAppPause,
		KeyProductCreated, KeyProductUpdated, KeyProductDeleted, KeyProductDeleteCancelled,
		KeyProductDeleteConfirm, KeyProductNotFound, KeyProductKeepValue,
		KeyProductFieldNegative, KeyProductFieldBlank, KeyProductFieldTooLarge,
		KeyInventoryEmpty, KeyInventoryNone,
		KeySaleRegistered, KeySaleNoStock, KeySaleInsufficientStock, KeySalesEmpty,
		KeyReportNothingSold, KeyExportDone, KeyRateLimited,
		KeyMenuTitle, KeyReportsTitle, KeyPromptNewPrice, KeyCustomerWholesale,
		KeyFieldWarranty, KeyRowPerformance,
	}
	for _, key := range keys {
		assert.Contains(t, en, key)
	}
}
