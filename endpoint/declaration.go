package endpoint

// Kind discriminates the two declaration forms.
type Kind int

const (
	// KindSimple is a plain slash-delimited path declaration.
	KindSimple Kind = iota
	// KindConfigured is a path declaration carrying per-resource options.
	KindConfigured
)

// Options is the per-resource configuration attached to a Configured
// declaration.
type Options struct {
	// CreateMethod overrides the HTTP method used by the create verb.
	// Empty means the default (post). It does not affect update.
	CreateMethod string

	// Versions are version prefixes contributed to the global alias set.
	// Aliases replicate simple declarations; configured declarations are
	// never auto-replicated.
	Versions []string

	// Headers are merged over the client default headers for calls on
	// this resource.
	Headers map[string]string
}

// Declaration is a single endpoint declaration. Construct with Simple or
// Configured; the zero value is an empty simple declaration and is dropped
// during normalization.
type Declaration struct {
	kind Kind
	path string
	opts *Options
}

// Simple declares a plain path endpoint, e.g. "users" or "users/posts".
func Simple(path string) Declaration {
	return Declaration{kind: KindSimple, path: path}
}

// Configured declares a path endpoint with per-resource options.
func Configured(path string, opts Options) Declaration {
	return Declaration{kind: KindConfigured, path: path, opts: &opts}
}

// Kind returns the declaration form.
func (d Declaration) Kind() Kind { return d.kind }

// Path returns the raw declared path.
func (d Declaration) Path() string { return d.path }

// Options returns the attached options, or nil for a simple declaration.
func (d Declaration) Options() *Options { return d.opts }
