// Package config loads a declarative restree client configuration from a
// YAML file with environment overrides.
//
//	# restree.yml
//	root: https://api.example.com
//	versions: [v2]
//	headers:
//	  X-Env: staging
//	endpoints:
//	  - users
//	  - users/posts
//	  - resource: accounts
//	    create_method: put
//	    versions: [v3]
//
// A plain string item is a simple declaration; a mapping item is a
// configured one.
//
//	file, err := config.Load("restree.yml")
//	cfg := file.Config()
//	cfg.Request = transport.New(transport.Config{})
//	api, err := restree.New(cfg)
//
// Scalar fields can be overridden with RESTREE_-prefixed environment
// variables (e.g. RESTREE_ROOT). A .env file next to the config file is
// loaded first when present.
package config
