package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wzkariampuzha/geardocs"
	"github.com/wzkariampuzha/geardocs/goquery"
	"github.com/wzkariampuzha/geardocs/htmltomarkdown"
	"github.com/wzkariampuzha/geardocs/render"
)

func newRegistry() *render.Registry {
	return render.NewRegistry(goquery.NewExtractor(), htmltomarkdown.NewConverter())
}

func TestRegistry_Parser(t *testing.T) {
	t.Parallel()

	t.Run("covers every recognized format", func(t *testing.T) {
		t.Parallel()

		registry := newRegistry()
		for _, format := range geardocs.Formats() {
			parser, err := registry.Parser(format)
			require.NoError(t, err, "format %q", format)
			assert.NotNil(t, parser)
		}
	})

	t.Run("rejects unrecognized formats with ECONFIG", func(t *testing.T) {
		t.Parallel()

		_, err := newRegistry().Parser("pdf")
		require.Error(t, err)
		assert.Equal(t, geardocs.ECONFIG, geardocs.ErrorCode(err))
	})
}
