package iddl

// Style is what a component needs to render a role in a context.
type Style struct {
	// ClassName is the space separated list of atomic classes. Every class's
	// rule is already in the engine stylesheet.
	ClassName string
	// Style is the effective property map the classes encode.
	Style    map[string]string
	Tag      string
	Aria     map[string]string
	Renderer string
	Meta     map[string]string
}

// IsComplex reports whether rendering is delegated to Renderer.
func (s Style) IsComplex() bool { return s.Renderer != "" }

// ResolveStyle resolves role name of domain against ctx and injects its atoms.
// Unknown roles resolve to the domain's fallback and never fail.
func (e *Engine) ResolveStyle(domain Domain, name string, ctx Context) Style {
	return e.StyleOf(e.Resolve(domain, name, ctx))
}

// StyleOf injects the atoms of an existing resolution.
func (e *Engine) StyleOf(r Resolved) Style {
	return Style{
		ClassName: r.ClassName(e.atoms),
		Style:     r.Style(),
		Tag:       r.Tag,
		Aria:      r.Aria,
		Renderer:  r.Renderer,
		Meta:      r.Meta,
	}
}

// Resolve returns the full resolution, including the layered descriptor,
// without injecting atoms.
func (e *Engine) Resolve(domain Domain, name string, ctx Context) Resolved {
	return e.resolver.Resolve(domain, name, ctx)
}

// Stylesheet returns every rule injected so far in insertion order.
func (e *Engine) Stylesheet() string {
	return e.atoms.Stylesheet()
}
