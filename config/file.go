package config

import (
	"github.com/kbukum/restree"
	"github.com/kbukum/restree/endpoint"
)

// EndpointFile is one endpoint declaration as it appears in the file. An
// entry with only Resource set maps to a simple declaration; any other
// field makes it a configured one.
type EndpointFile struct {
	Resource     string            `yaml:"resource" mapstructure:"resource" validate:"required"`
	Versions     []string          `yaml:"versions" mapstructure:"versions"`
	CreateMethod string            `yaml:"create_method" mapstructure:"create_method"`
	Headers      map[string]string `yaml:"headers" mapstructure:"headers"`
}

// Declaration converts the file entry to an endpoint declaration.
func (e EndpointFile) Declaration() endpoint.Declaration {
	if len(e.Versions) == 0 && e.CreateMethod == "" && len(e.Headers) == 0 {
		return endpoint.Simple(e.Resource)
	}
	return endpoint.Configured(e.Resource, endpoint.Options{
		CreateMethod: e.CreateMethod,
		Versions:     e.Versions,
		Headers:      e.Headers,
	})
}

// File is the on-disk client configuration.
type File struct {
	Root      string            `yaml:"root" mapstructure:"root" validate:"required"`
	Versions  []string          `yaml:"versions" mapstructure:"versions"`
	Headers   map[string]string `yaml:"headers" mapstructure:"headers"`
	Endpoints []EndpointFile    `yaml:"endpoints" mapstructure:"endpoints" validate:"required,min=1,dive"`
}

// Config converts the file to a restree.Config. The transport is not part
// of the file format; the caller supplies Request before restree.New.
func (f *File) Config() restree.Config {
	decls := make([]endpoint.Declaration, 0, len(f.Endpoints))
	for _, e := range f.Endpoints {
		decls = append(decls, e.Declaration())
	}
	return restree.Config{
		Root:      f.Root,
		Endpoints: decls,
		Versions:  f.Versions,
		Headers:   f.Headers,
	}
}
