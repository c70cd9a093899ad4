// FILE: lixenwraith/lightconfig/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/lightconfig"
)

// ConfiguredPanel mixes primitive, pointer and labelled configuration fields
// with state that is never persisted.
type ConfiguredPanel struct {
	*lightconfig.Configuration

	IntVar         int      `config:""`
	DoubleVar      float64  `config:""`
	BoxedIntVar    *int     `config:""`
	BoxedDoubleVar *float64 `config:""`
	StrVar         string   `config:""`
	FltLblVal      float32  `config:"A primitive float value"`

	clicks int
}

func newPanel(path string) (*ConfiguredPanel, error) {
	boxedInt, boxedDouble := 5, 4.2
	p := &ConfiguredPanel{
		IntVar:         1,
		DoubleVar:      2.5,
		BoxedIntVar:    &boxedInt,
		BoxedDoubleVar: &boxedDouble,
		StrVar:         "Hello World!",
		FltLblVal:      0.5,
	}

	cfg, err := lightconfig.New(p, path)
	if err != nil {
		return nil, err
	}
	p.Configuration = cfg
	return p, nil
}

// SetDoubleVar updates the field and notifies observers
func (p *ConfiguredPanel) SetDoubleVar(v float64) error {
	return p.SetAndUpdate("DoubleVar", v)
}

func main() {
	dir, err := os.MkdirTemp("", "lightconfig-example")
	if err != nil {
		log.Fatalf("❌ Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "panel", "testConfig.xml")

	// =========================================================================
	// PART 1: BIND AND CREATE
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Binding panel and creating its file...")

	panel, err := newPanel(path)
	if err != nil {
		log.Fatalf("❌ Failed to bind panel: %v", err)
	}
	if err := panel.Load(); lightconfig.IsNotFound(err) {
		log.Println("✅ No file yet, as expected.")
	}
	if err := panel.LoadOrSave(); err != nil {
		log.Fatalf("❌ LoadOrSave failed: %v", err)
	}
	log.Printf("✅ Created %s with %d variables.", panel.Location(), len(panel.Keys()))

	// =========================================================================
	// PART 2: OBSERVE AND UPDATE
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Observing changes...")

	panel.ObserveAll(lightconfig.ObserverFunc(func(v *lightconfig.Variable) {
		log.Printf("   🔔 %s (%s) is now %s", v.Key(), v.Label(), v.String())
	}))

	if err := panel.SetDoubleVar(5.9); err != nil {
		log.Fatalf("❌ SetDoubleVar failed: %v", err)
	}
	// Setting the same value again is silent
	_ = panel.SetDoubleVar(5.9)

	panel.IntVar = 2
	panel.StrVar = "Modified value"
	panel.clicks++
	if err := panel.UpdateAll(true); err != nil {
		log.Fatalf("❌ UpdateAll failed: %v", err)
	}
	if err := panel.Save(); err != nil {
		log.Fatalf("❌ Save failed: %v", err)
	}

	// =========================================================================
	// PART 3: RELOAD IN A NEW INSTANCE
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Loading into a fresh panel...")

	panel3, err := newPanel(path)
	if err != nil {
		log.Fatalf("❌ Failed to bind panel: %v", err)
	}
	log.Printf("   before load: IntVar=%d StrVar=%q", panel3.IntVar, panel3.StrVar)
	if err := panel3.Load(); err != nil {
		log.Fatalf("❌ Load failed: %v", err)
	}
	log.Printf("✅ after load:  IntVar=%d StrVar=%q DoubleVar=%v", panel3.IntVar, panel3.StrVar, panel3.DoubleVar)

	content, _ := os.ReadFile(path)
	fmt.Println(string(content))

	// =========================================================================
	// PART 4: DELETE
	// =========================================================================
	log.Println("---")
	if err := panel3.Delete(); err != nil {
		log.Fatalf("❌ Delete failed: %v", err)
	}
	if err := panel3.Load(); lightconfig.IsNotFound(err) {
		log.Println("✅ File deleted, load reports not found.")
	}
}
