// Package listings validates and loads project and collection description
// files against the bundled JSON Schemas.
//
// Callers wanting field-level diagnostics use the Validate* operations,
// which never return an error. Callers wanting a trusted typed record use
// the Cast* and Load* operations, which report every failure as an error.
package listings

import (
	"io/fs"
	"log"

	"github.com/atvirokodosprendimai/listings/internal/codec"
	"github.com/atvirokodosprendimai/listings/internal/schemaset"
)

// Decoder parses raw file content into the generic value fed to validation.
type Decoder interface {
	Decode(data []byte) (map[string]any, error)
}

// Service is the validation boundary. Schemas are compiled once in New;
// after that the service is read-only and safe for concurrent use.
type Service struct {
	registry *schemaset.Registry
	decoders map[FileFormat]Decoder
	schemaFS fs.FS
	fileFS   fs.FS
	logger   *log.Logger
}

type Option func(*Service)

// WithLogger replaces the logger used for cast-failure diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithSchemaFS loads schema documents from fsys instead of the bundled set.
// Each registered name must resolve to a "<name>.json" document.
func WithSchemaFS(fsys fs.FS) Option {
	return func(s *Service) { s.schemaFS = fsys }
}

// WithFS reads description files from fsys instead of the host filesystem.
func WithFS(fsys fs.FS) Option {
	return func(s *Service) { s.fileFS = fsys }
}

// WithDecoder replaces the decoder for a format.
func WithDecoder(format FileFormat, dec Decoder) Option {
	return func(s *Service) { s.decoders[format] = dec }
}

// New compiles the four schemas (project, collection, url,
// blockchain-address) and returns a ready service.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		decoders: map[FileFormat]Decoder{
			FormatJSON: codec.JSON{},
			FormatYAML: codec.YAML{},
		},
		schemaFS: schemaset.Builtin(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	registry, err := schemaset.New(s.schemaFS)
	if err != nil {
		return nil, err
	}
	s.registry = registry
	return s, nil
}
