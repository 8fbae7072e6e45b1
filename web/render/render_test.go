package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyreny/zye/web/render"
)

func TestRenderer(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)

	t.Run("placeholders are substituted", func(t *testing.T) {
		out, err := r.Render("notFound", map[string]string{"code": "abc123"})
		require.NoError(t, err)
		assert.Contains(t, out, `<span class="code">abc123</span>`)
	})

	t.Run("unknown placeholders stay verbatim", func(t *testing.T) {
		out, err := r.Render("notFound", map[string]string{})
		require.NoError(t, err)
		assert.Contains(t, out, "{{code}}")
	})

	t.Run("empty value removes the placeholder", func(t *testing.T) {
		out, err := r.Render("password", map[string]string{"code": "abc123", "errSection": ""})
		require.NoError(t, err)
		assert.NotContains(t, out, "{{errSection}}")
		assert.Contains(t, out, `value="abc123"`)
	})

	t.Run("unknown template name", func(t *testing.T) {
		_, err := r.Render("nope", nil)
		assert.Error(t, err)
	})

	t.Run("all pages are registered", func(t *testing.T) {
		for _, name := range []string{"home", "notFound", "password"} {
			_, err := r.Render(name, map[string]string{})
			assert.NoError(t, err, "template %s", name)
		}
	})
}
