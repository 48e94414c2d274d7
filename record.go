package listings

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Schema names registered by every service.
const (
	SchemaProject           = "project"
	SchemaCollection        = "collection"
	SchemaURL               = "url"
	SchemaBlockchainAddress = "blockchain-address"
)

// FileFormat enumerates the supported description-file encodings.
type FileFormat int

const (
	// FormatJSON is the strict data-interchange format.
	FormatJSON FileFormat = iota
	// FormatYAML is the indented human-editable format.
	FormatYAML
)

// DefaultFormat applies when a load call omits the format argument.
const DefaultFormat = FormatJSON

func (f FileFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("FileFormat(%d)", int(f))
	}
}

// FormatForPath infers the format from the file extension. Unknown
// extensions fall back to DefaultFormat.
func FormatForPath(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return DefaultFormat
	}
}

// Record is implemented by the typed description records. Schema names the
// schema that must pass before a value may be treated as that record.
type Record interface {
	Schema() string
}

// Project is a validated project description.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Logo        string   `json:"logo,omitempty"`
	Addresses   []string `json:"addresses,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (Project) Schema() string { return SchemaProject }

// Collection is a validated collection description.
type Collection struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address"`
	URL         string `json:"url,omitempty"`
	Banner      string `json:"banner,omitempty"`
}

func (Collection) Schema() string { return SchemaCollection }
