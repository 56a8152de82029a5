package overlay

import (
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML layout of an overlay file:
//
//	roles:
//	  "1001": Cuisine
//	adjustments:
//	  - emp_id: "1001"
//	    date: "2024-03-02"
//	    hours: 7.5
type fileFormat struct {
	Roles       map[string]string `yaml:"roles"`
	Adjustments []fileAdjustment  `yaml:"adjustments"`
}

type fileAdjustment struct {
	EmployeeID string      `yaml:"emp_id"`
	Date       models.Date `yaml:"date"`
	Hours      float64     `yaml:"hours"`
}

// Decode reads an overlay from YAML.
func Decode(r io.Reader) (*Overlay, error) {
	var ff fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ff); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode overlay: %w", err)
	}

	o := New()
	for id, role := range ff.Roles {
		o.AssignRole(id, role)
	}
	for i, adj := range ff.Adjustments {
		if adj.EmployeeID == "" {
			return nil, fmt.Errorf("adjustment %d: emp_id is required", i+1)
		}
		if adj.Date.IsZero() {
			return nil, fmt.Errorf("adjustment %d: date is required", i+1)
		}
		if err := o.SetHours(adj.EmployeeID, adj.Date, adj.Hours); err != nil {
			return nil, fmt.Errorf("adjustment %d: %w", i+1, err)
		}
	}
	return o, nil
}

// LoadFile reads an overlay YAML file.
func LoadFile(path string) (*Overlay, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open overlay %s: %w", path, err)
	}
	defer file.Close()

	o, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}
