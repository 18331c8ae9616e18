package lint

// Options holds every rule's option map for one file. It is built once per
// file and shared read-only across rules.
type Options map[string]map[string]any

// Rule returns the options for one rule, or nil.
func (o Options) Rule(id string) map[string]any {
	if o == nil {
		return nil
	}
	return o[id]
}
