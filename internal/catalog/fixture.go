package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a catalog overlay from a JSON or YAML file
// (selected by extension) and merges it over the built-in defaults.
// Only the sections present in the file replace their defaults; absent
// sections keep the shipped tables. The merged catalog is validated
// before return.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read overlay file")
	}

	var overlay Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, eris.Wrap(err, "catalog: unmarshal YAML overlay")
		}
	case ".json":
		if err := json.Unmarshal(data, &overlay); err != nil {
			return nil, eris.Wrap(err, "catalog: unmarshal JSON overlay")
		}
	default:
		return nil, eris.Errorf("catalog: unsupported overlay extension %q", ext)
	}

	merged := Default()
	if len(overlay.Questions) > 0 {
		merged.Questions = overlay.Questions
	}
	if len(overlay.Services) > 0 {
		merged.Services = overlay.Services
	}
	if len(overlay.Weights) > 0 {
		merged.Weights = overlay.Weights
	}
	if len(overlay.AgencyOverrides) > 0 {
		merged.AgencyOverrides = overlay.AgencyOverrides
	}
	if len(overlay.ServiceRecs) > 0 {
		merged.ServiceRecs = overlay.ServiceRecs
	}
	if len(overlay.UniversalRecs) > 0 {
		merged.UniversalRecs = overlay.UniversalRecs
	}

	if err := merged.Validate(); err != nil {
		return nil, eris.Wrapf(err, "catalog: overlay %s", path)
	}
	return merged, nil
}
