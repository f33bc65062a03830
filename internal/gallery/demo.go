package gallery

import (
	_ "embed"

	"github.com/alexisbeaulieu97/prism/internal/config"
)

//go:embed demo.yaml
var demoManifest []byte

// DemoManifest returns the built-in manifest the showcase opens when no file is given.
func DemoManifest() (*config.Manifest, error) {
	return config.Parse("demo.yaml", demoManifest)
}
