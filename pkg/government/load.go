package government

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile is the YAML shape of a roster overlay.
type rosterFile struct {
	Officials map[string]string `yaml:"officials"`
}

// LoadRoster reads a roster overlay from a YAML file of the form:
//
//	officials:
//	  Friedrich Merz: CDU/CSU
//	  Lars Klingbeil: SPD
//
// The returned roster contains the default entries with the file's entries
// layered on top, so a new cabinet can be supplied without recompiling.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	if len(file.Officials) == 0 {
		return nil, fmt.Errorf("roster file %s contains no officials", path)
	}

	roster := DefaultRoster()
	for name, party := range file.Officials {
		roster.Add(name, party)
	}

	return roster, nil
}
