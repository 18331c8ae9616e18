package lint

// Provider is a named collection of rules shipped outside this module's rule
// packages. Its rules are registered as they are.
type Provider interface {
	// Name returns the pack name, e.g., "style".
	Name() string
	// Rules returns the pack's rule definitions.
	Rules() []RuleDef
}

// RegisterProvider registers every rule of p unmodified.
func RegisterProvider(p Provider) {
	for _, def := range p.Rules() {
		Register(def)
	}
}
