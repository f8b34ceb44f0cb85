package restree

import "fmt"

// Verb enumerates the REST operations bound to every resource node.
type Verb string

const (
	// VerbCreate creates a resource (default method post, configurable
	// per resource via endpoint.Options.CreateMethod).
	VerbCreate Verb = "create"
	// VerbGet fetches a single resource representation.
	VerbGet Verb = "get"
	// VerbList fetches a collection; same transport call as get, kept as
	// a distinct verb for collection semantics.
	VerbList Verb = "list"
	// VerbUpdate replaces a resource (put).
	VerbUpdate Verb = "update"
	// VerbPatch partially updates a resource.
	VerbPatch Verb = "patch"
	// VerbDelete deletes a resource. Reachable under both "del" and
	// "delete" by default.
	VerbDelete Verb = "del"
)

// defaultMethods maps each verb to its default HTTP method.
var defaultMethods = map[Verb]string{
	VerbCreate: "post",
	VerbGet:    "get",
	VerbList:   "get",
	VerbUpdate: "put",
	VerbPatch:  "patch",
	VerbDelete: "delete",
}

// verbTable maps public operation names to canonical verbs. Renames from
// Config.AltMethodNames replace a verb's default names, so a renamed verb
// is no longer reachable under its original name via Invoke.
type verbTable map[string]Verb

func defaultVerbTable() verbTable {
	return verbTable{
		"create": VerbCreate,
		"get":    VerbGet,
		"list":   VerbList,
		"update": VerbUpdate,
		"patch":  VerbPatch,
		"del":    VerbDelete,
		"delete": VerbDelete,
	}
}

// newVerbTable resolves the alias map into a name lookup table once at
// construction; dispatch is a plain map lookup afterwards. All renamed
// verbs lose their default names before any alias is inserted, so an
// alias that shadows a name still in use is rejected regardless of map
// iteration order.
func newVerbTable(alt map[Verb]string) (verbTable, error) {
	t := defaultVerbTable()
	for verb, name := range alt {
		if _, ok := defaultMethods[verb]; !ok {
			return nil, fmt.Errorf("restree: unknown verb %q in alt method names", verb)
		}
		if name == "" {
			return nil, fmt.Errorf("restree: empty alt name for verb %q", verb)
		}
		for n, v := range t {
			if v == verb {
				delete(t, n)
			}
		}
	}
	for verb, name := range alt {
		if existing, ok := t[name]; ok && existing != verb {
			return nil, fmt.Errorf("restree: alt name %q for verb %q collides with verb %q", name, verb, existing)
		}
		t[name] = verb
	}
	return t, nil
}
