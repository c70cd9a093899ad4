// File: lixenwraith/lightconfig/doc.go

// Package lightconfig binds tagged struct fields to a persisted, observable
// configuration and keeps the two in sync through explicit save, load and
// update calls.
//
// Features:
//   - Struct fields marked with a `config` tag become variables, keyed by field name
//   - Variables read the live field on every refresh
//   - Observers are notified only through explicit update calls
//   - XML persistence by default, with TOML, YAML and JSON codecs
//   - Atomic file writes through an afero filesystem
//   - Schema drift between file and struct is tolerated and logged
//
// Quick Start:
//
//	type Panel struct {
//	    *lightconfig.Configuration
//	    Width  int     `config:"Window width"`
//	    Title  string  `config:""`
//	    Ratio  float64 `config:""`
//	    cache  []byte
//	}
//
//	p := &Panel{Width: 640, Title: "main"}
//	cfg, err := lightconfig.Quick(p, "panel.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Configuration = cfg
//
//	if v, ok := p.Var("Width"); ok {
//	    v.Observe(lightconfig.ObserverFunc(func(v *lightconfig.Variable) {
//	        fmt.Println("width is now", v.String())
//	    }))
//	}
//	_ = p.SetAndUpdate("Width", 800)
//	_ = p.Save()
//
// Builder:
//
//	cfg, err := lightconfig.NewBuilder().
//	    WithOwner(p).
//	    WithFileDiscovery(lightconfig.DefaultDiscoveryOptions("myapp")).
//	    WithFormat("toml").
//	    WithLoadOrSave().
//	    Build()
//
// Persisted XML layout:
//
//	<configuration owner="Panel">
//	  <var key="Title" label="Title" type="string">main</var>
//	  <var key="Width" label="Window width" type="int">800</var>
//	</configuration>
//
// Configuration, Store and Variable are not synchronized. Use them from a
// single goroutine or guard them with an external lock.
package lightconfig
