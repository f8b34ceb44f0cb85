package restree

import (
	"strings"

	"github.com/kbukum/restree/endpoint"
	"github.com/kbukum/restree/tree"
)

// Client is the compiled resource hierarchy. It is immutable after New and
// safe for concurrent use.
type Client struct {
	config  Config
	root    string
	tree    *tree.Node
	verbs   verbTable
	options map[string]*endpoint.Options
}

// New builds the resource hierarchy from cfg. Construction is synchronous,
// performs no I/O, and fails fast on configuration errors.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	verbs, err := newVerbTable(cfg.AltMethodNames)
	if err != nil {
		return nil, err
	}

	norm, err := endpoint.Normalize(cfg.Endpoints, cfg.Versions)
	if err != nil {
		return nil, err
	}

	seqs := make([][]string, 0, len(norm.Sequences))
	options := make(map[string]*endpoint.Options)
	for _, seq := range norm.Sequences {
		seqs = append(seqs, seq.Segments)
		if seq.Options != nil {
			options[seq.Path()] = seq.Options
		}
	}

	return &Client{
		config:  cfg,
		root:    strings.TrimRight(cfg.Root, "/"),
		tree:    tree.Merge(seqs),
		verbs:   verbs,
		options: options,
	}, nil
}

// Root returns the normalized base URL (no trailing separator).
func (c *Client) Root() string {
	return c.root
}

// Resource returns the named top-level resource, or nil if it was not
// declared.
func (c *Client) Resource(name string) *Resource {
	node := c.tree.Child(name)
	if node == nil {
		return nil
	}
	return &Resource{
		client: c,
		node:   node,
		opts:   c.options[name],
		name:   name,
		path:   name,
	}
}

// Resources returns the top-level resource names in merged order.
func (c *Client) Resources() []string {
	return c.tree.Children()
}
