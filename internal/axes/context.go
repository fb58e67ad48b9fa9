package axes

// Context is the effective set of axis values at one node of the tree.
type Context struct {
	Role       string
	Prominence Prominence
	Density    Density
	Intent     Intent
	Align      Align
	Depth      int
}

// Overrides holds the axes a container boundary sets explicitly. Zero-valued
// fields are inherited from the parent.
type Overrides struct {
	Role       string
	Prominence Prominence
	Density    Density
	Intent     Intent
	Align      Align
}

// IsZero reports whether no axis is overridden.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Root returns the context used at the top of every tree.
func Root() Context {
	return Context{
		Prominence: ProminenceStandard,
		Density:    DensityStandard,
		Intent:     IntentNeutral,
		Depth:      0,
	}
}

// Derive builds the child context for a container boundary. Each axis comes
// from o when set, otherwise from parent; depth grows by exactly one.
func Derive(parent Context, o Overrides) Context {
	child := parent
	if o.Role != "" {
		child.Role = o.Role
	}
	if o.Prominence != "" {
		child.Prominence = o.Prominence
	}
	if o.Density != "" {
		child.Density = o.Density
	}
	if o.Intent != "" {
		child.Intent = o.Intent
	}
	if o.Align != "" {
		child.Align = o.Align
	}
	child.Depth = parent.Depth + 1
	return child
}

// Derive is a convenience wrapper around the package-level Derive.
func (c Context) Derive(o Overrides) Context {
	return Derive(c, o)
}

// Chain derives through every boundary in order, as a render pass descending
// through nested containers would.
func Chain(root Context, boundaries ...Overrides) Context {
	ctx := root
	for _, o := range boundaries {
		ctx = Derive(ctx, o)
	}
	return ctx
}
