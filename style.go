package canopy

// Style maps render attribute names to values for one state, for example
// {"fill": "#FFFFFF", "outline": "#C0C0C0", "width": 1.0}.
type Style map[string]any

// StateStyles maps a widget state name to the style an element takes in that
// state. States without an entry leave the element untouched.
type StateStyles map[string]Style

// StyleSource resolves the style table of one element component of one
// widget type for the light or dark variant of a theme.
type StyleSource interface {
	Lookup(widgetType, component string, dark bool) StateStyles
}

// Merge returns a new table with the entries of override layered over s,
// attribute by attribute. Neither input is modified.
func (s StateStyles) Merge(override StateStyles) StateStyles {
	out := make(StateStyles, len(s)+len(override))
	for state, style := range s {
		out[state] = style.clone()
	}
	for state, style := range override {
		dst, ok := out[state]
		if !ok {
			dst = make(Style, len(style))
			out[state] = dst
		}
		for k, v := range style {
			dst[k] = v
		}
	}
	return out
}

func (s Style) clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// resolveStyles looks up the theme table for one element and layers the
// constructor overrides on top.
func resolveStyles(env *Env, widgetType, component string, override StateStyles) StateStyles {
	var base StateStyles
	if env.Theme != nil && component != "" {
		base = env.Theme.Lookup(widgetType, component, env.dark)
	}
	return base.Merge(override)
}
