package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"droscher.com/RecipeBox/pkg/integrations/web"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/ingredients.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "flour", "measurement_unit": "g"}, {"name": "milk", "measurement_unit": "ml"}]`))
	})
	mux.HandleFunc("/tags.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "Breakfast", "slug": "breakfast"}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestIngredients(t *testing.T) {
	server := fixtureServer(t)
	source := web.NewSource(server.URL+"/ingredients.json", zaptest.NewLogger(t))

	ingredients, err := source.Ingredients()
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "milk", ingredients[1].Name)
}

func TestTags_FetchesTwice(t *testing.T) {
	server := fixtureServer(t)
	source := web.NewSource(server.URL+"/tags.json", zaptest.NewLogger(t))

	for i := 0; i < 2; i++ {
		tags, err := source.Tags()
		require.NoError(t, err)
		assert.Len(t, tags, 1)
	}
}

func TestMissingDocument(t *testing.T) {
	server := fixtureServer(t)
	source := web.NewSource(server.URL+"/missing.json", zaptest.NewLogger(t))

	tags, err := source.Tags()
	require.Error(t, err)
	assert.Nil(t, tags)
}
