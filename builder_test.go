// FILE: lixenwraith/lightconfig/builder_test.go
package lightconfig

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("BasicBuilder", func(t *testing.T) {
		p := &panel{Width: 10}
		cfg, err := NewBuilder().
			WithOwner(p).
			WithLogger(quietLogger()).
			Build()

		require.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, panelVars, cfg.Store().Len())
		assert.Empty(t, cfg.Location())
	})

	t.Run("FormatOverridesExtension", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := &panel{Width: 10}
		cfg, err := NewBuilder().
			WithOwner(p).
			WithFile("/panel.conf").
			WithFormat("yaml").
			WithFs(fs).
			WithLogger(quietLogger()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, cfg.Codec().Format())

		require.NoError(t, cfg.Save())
		data, err := afero.ReadFile(fs, "/panel.conf")
		require.NoError(t, err)
		assert.Contains(t, string(data), "key: Width")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := NewBuilder().
			WithOwner(&panel{}).
			WithFormat("ini").
			Build()
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("CodecOverridesFormat", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithOwner(&panel{}).
			WithFormat("yaml").
			WithCodec(&JSONCodec{}).
			WithLogger(quietLogger()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Codec().Format())
	})

	t.Run("CustomTagName", func(t *testing.T) {
		owner := &struct {
			Host string `setting:"Server host"`
			Port int    `setting:""`
			Skip int    `config:""`
		}{Host: "localhost", Port: 8080}

		cfg, err := NewBuilder().
			WithOwner(owner).
			WithTagName("setting").
			WithLogger(quietLogger()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"Host", "Port"}, cfg.Keys())

		host, _ := cfg.Var("Host")
		assert.Equal(t, "Server host", host.Label())
	})

	t.Run("WithOmissions", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		cfg, err := NewBuilder().
			WithOwner(&panel{Title: "secret"}).
			WithFile("/p.xml").
			WithFs(fs).
			WithOmissions(Omission{Type: "panel", Field: "Title"}, Omission{Type: "Variable", Field: "label"}).
			WithLogger(quietLogger()).
			Build()
		require.NoError(t, err)
		require.NoError(t, cfg.Save())

		data, err := afero.ReadFile(fs, "/p.xml")
		require.NoError(t, err)
		assert.NotContains(t, string(data), "secret")
		assert.NotContains(t, string(data), "label=")
		assert.True(t, cfg.Omitted().Has("Variable", "accessor"))
	})

	t.Run("WithLoadOrSave", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		_, err := NewBuilder().
			WithOwner(&panel{Width: 77}).
			WithFile("/p.toml").
			WithFs(fs).
			WithLoadOrSave().
			WithLogger(quietLogger()).
			Build()
		require.NoError(t, err)

		p := &panel{}
		cfg, err := NewBuilder().
			WithOwner(p).
			WithFile("/p.toml").
			WithFs(fs).
			WithLoadOrSave().
			WithLogger(quietLogger()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 77, p.Width)
		assert.Equal(t, StateLoaded, cfg.State())
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().MustBuild()
		})
	})
}

// TestBuilderWithValidator tests validation after binding and loading
func TestBuilderWithValidator(t *testing.T) {
	widthPositive := func(c *Configuration) error {
		w, err := c.Int64("Width")
		if err != nil {
			return err
		}
		if w <= 0 {
			return fmt.Errorf("width must be positive, got %d", w)
		}
		return nil
	}

	t.Run("Passes", func(t *testing.T) {
		_, err := NewBuilder().
			WithOwner(&panel{Width: 10}).
			WithValidator(widthPositive).
			WithValidator(nil).
			WithLogger(quietLogger()).
			Build()
		assert.NoError(t, err)
	})

	t.Run("Fails", func(t *testing.T) {
		_, err := NewBuilder().
			WithOwner(&panel{Width: 0}).
			WithValidator(widthPositive).
			WithLogger(quietLogger()).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
		assert.Contains(t, err.Error(), "width must be positive")
	})

	t.Run("RunsInOrder", func(t *testing.T) {
		var order []int
		stop := errors.New("stop")
		_, err := NewBuilder().
			WithOwner(&panel{}).
			WithValidator(func(*Configuration) error { order = append(order, 1); return nil }).
			WithValidator(func(*Configuration) error { order = append(order, 2); return stop }).
			WithValidator(func(*Configuration) error { order = append(order, 3); return nil }).
			WithLogger(quietLogger()).
			Build()
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, []int{1, 2}, order)
	})
}
