// FILE: lixenwraith/lightconfig/config_test.go
package lightconfig

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panel is the owner used across tests
type panel struct {
	*Configuration

	Width   int      `config:"Window width"`
	Ratio   float64  `config:""`
	Count   *int     `config:""`
	Scale   *float64 `config:""`
	Title   string   `config:""`
	Opacity float32  `config:"Opacity level"`

	Scratch string // not configuration
	Skipped bool   `config:"-"`
	hidden  int    `config:""` // tagged but unreachable
}

const panelVars = 6

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func quietLogger() *log.Logger { return log.New(io.Discard) }

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

// newPanel binds p on a fresh in-memory filesystem
func newPanel(t *testing.T, fs afero.Fs, p *panel, path string) *Configuration {
	t.Helper()
	cfg, err := NewBuilder().
		WithOwner(p).
		WithFile(path).
		WithFs(fs).
		WithLogger(quietLogger()).
		Build()
	require.NoError(t, err)
	p.Configuration = cfg
	return cfg
}

func TestConfigCreation(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := &panel{Width: 640, Title: "main", hidden: 1}
	cfg := newPanel(t, fs, p, "/cfg/panel.xml")

	t.Run("DiscoveryCompleteness", func(t *testing.T) {
		assert.Equal(t, panelVars, cfg.Store().Len())
		assert.ElementsMatch(t,
			[]string{"Width", "Ratio", "Count", "Scale", "Title", "Opacity"},
			cfg.Keys())
		assert.False(t, cfg.Store().Has("Scratch"))
		assert.False(t, cfg.Store().Has("Skipped"))
		assert.False(t, cfg.Store().Has("hidden"))
	})

	t.Run("DiscoveryErrorReported", func(t *testing.T) {
		err := cfg.BindErrors()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDiscovery)
		assert.Contains(t, err.Error(), "hidden")
	})

	t.Run("LabelResolution", func(t *testing.T) {
		w, ok := cfg.Var("Width")
		require.True(t, ok)
		assert.Equal(t, "Window width", w.Label())

		o, _ := cfg.Var("Opacity")
		assert.Equal(t, "Opacity level", o.Label())

		ti, _ := cfg.Var("Title")
		assert.Equal(t, "Title", ti.Label())
	})

	t.Run("InitialState", func(t *testing.T) {
		assert.Equal(t, StateUnloaded, cfg.State())
		assert.Equal(t, "/cfg/panel.xml", cfg.Location())
		assert.Same(t, p, cfg.Owner())
		assert.Equal(t, FormatXML, cfg.Codec().Format())
	})

	t.Run("Configurable", func(t *testing.T) {
		var c Configurable = p
		assert.Same(t, cfg, c.Config())
	})

	t.Run("LateBindingAccessor", func(t *testing.T) {
		p.Width = 1024
		w, _ := cfg.Var("Width")
		assert.Equal(t, 640, w.Value(), "value is only pulled on refresh")
		require.NoError(t, w.Refresh())
		assert.Equal(t, 1024, w.Value())
		assert.True(t, w.Changed())
	})

	t.Run("TypedGetters", func(t *testing.T) {
		n, err := cfg.Int64("Width")
		require.NoError(t, err)
		assert.Equal(t, int64(1024), n)

		s, err := cfg.String("Title")
		require.NoError(t, err)
		assert.Equal(t, "main", s)

		_, err = cfg.String("Nope")
		assert.ErrorIs(t, err, ErrUnknownVariable)
	})
}

func TestInvalidOwner(t *testing.T) {
	type plain struct {
		A int `config:""`
	}

	tests := []struct {
		name  string
		owner any
	}{
		{"Nil", nil},
		{"NonPointer", plain{}},
		{"NilPointer", (*plain)(nil)},
		{"PointerToNonStruct", new(int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().WithOwner(tt.owner).WithLogger(quietLogger()).Build()
			assert.ErrorIs(t, err, ErrInvalidOwner)
		})
	}
}

func TestBindLogsSkippedFields(t *testing.T) {
	logger, buf := bufferLogger()
	p := &panel{}
	_, err := NewBuilder().
		WithOwner(p).
		WithFs(afero.NewMemMapFs()).
		WithLogger(logger).
		Build()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "skipping configuration field")
	assert.Contains(t, buf.String(), "hidden")
}

func TestAccessorFailureDuringBind(t *testing.T) {
	p := &struct {
		A int `config:""`
		B int `config:""`
	}{A: 1, B: 2}

	fa := &failingAccessor{TagAccessor: NewTagAccessor(""), fail: map[string]bool{"B": true}}
	cfg, err := NewBuilder().
		WithOwner(p).
		WithFieldAccessor(fa).
		WithLogger(quietLogger()).
		Build()
	require.NoError(t, err)

	// The variable is bound with a nil value
	b, ok := cfg.Var("B")
	require.True(t, ok)
	assert.Nil(t, b.Value())
	assert.ErrorIs(t, cfg.BindErrors(), ErrAccessor)

	// UpdateAll keeps going past the failing accessor
	p.A = 5
	err = cfg.UpdateAll(false)
	assert.ErrorIs(t, err, ErrAccessor)
	a, _ := cfg.Var("A")
	assert.Equal(t, 5, a.Value())

	fa.fail["B"] = false
	require.NoError(t, cfg.UpdateAll(false))
	assert.Equal(t, 2, b.Value())
}

func TestInvalidKey(t *testing.T) {
	p := &struct {
		A int `config:""`
	}{}
	fa := &renamingAccessor{TagAccessor: NewTagAccessor(""), name: "bad key"}
	cfg, err := NewBuilder().
		WithOwner(p).
		WithFieldAccessor(fa).
		WithLogger(quietLogger()).
		Build()
	require.NoError(t, err)
	assert.Zero(t, cfg.Store().Len())
	assert.ErrorIs(t, cfg.BindErrors(), ErrDiscovery)
}

// failingAccessor fails reads of selected fields
type failingAccessor struct {
	*TagAccessor
	fail map[string]bool
}

func (a *failingAccessor) Get(owner any, name string) (any, error) {
	if a.fail[name] {
		return nil, assert.AnError
	}
	return a.TagAccessor.Get(owner, name)
}

// renamingAccessor reports every field under a fixed name
type renamingAccessor struct {
	*TagAccessor
	name string
}

func (a *renamingAccessor) Fields(owner any) ([]Field, error) {
	fields, err := a.TagAccessor.Fields(owner)
	for i := range fields {
		fields[i].Name = a.name
	}
	return fields, err
}

func TestOmitterOwner(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := &omittingPanel{Size: 3, Session: "abc"}
	cfg, err := NewBuilder().
		WithOwner(p).
		WithFs(fs).
		WithFile("/o.xml").
		WithLogger(quietLogger()).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Store().Len())

	require.NoError(t, cfg.Save())
	data, err := afero.ReadFile(fs, "/o.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data), `key="Size"`)
	assert.NotContains(t, string(data), "Session")

	p.Session = "live"
	require.NoError(t, cfg.Load())
	assert.Equal(t, "live", p.Session, "omitted variables are not restored")
}

type omittingPanel struct {
	Size    int    `config:""`
	Session string `config:""`
}

func (p *omittingPanel) Omissions() []Omission {
	return []Omission{{Type: "omittingPanel", Field: "Session"}}
}

func TestDefaultPath(t *testing.T) {
	p := &struct {
		A int `config:""`
	}{}
	cfg, err := New(p, filepath.Join(t.TempDir(), "a.toml"))
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, cfg.Codec().Format())
}
