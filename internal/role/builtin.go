package role

import (
	"errors"

	"github.com/alexisbeaulieu97/iddl/internal/axes"
	"github.com/alexisbeaulieu97/iddl/internal/style"
)

// Shared axis fragments. Values are design-token references; token values
// themselves are defined by the host stylesheet.
var (
	textIntent = map[axes.Intent]style.Fragment{
		axes.IntentNeutral:  {"color": "var(--color-text)"},
		axes.IntentBrand:    {"color": "var(--color-accent)"},
		axes.IntentPositive: {"color": "var(--color-success)"},
		axes.IntentCaution:  {"color": "var(--color-warning)"},
		axes.IntentCritical: {"color": "var(--color-error)"},
		axes.IntentInfo:     {"color": "var(--color-info)"},
	}

	textProminence = map[axes.Prominence]style.Fragment{
		axes.ProminenceHero:     {"font-size": "var(--font-size-3xl)", "font-weight": "600"},
		axes.ProminenceStrong:   {"font-size": "var(--font-size-sm)", "font-weight": "400"},
		axes.ProminenceStandard: {"font-size": "var(--font-size-sm)", "font-weight": "500"},
		axes.ProminenceSubtle:   {"font-size": "var(--font-size-xs)", "opacity": "0.6"},
	}

	textAlign = map[axes.Align]style.Fragment{
		axes.AlignLeft:   {"text-align": "left"},
		axes.AlignCenter: {"text-align": "center"},
		axes.AlignRight:  {"text-align": "right"},
	}

	surfaceIntent = map[axes.Intent]style.Fragment{
		axes.IntentNeutral:  {"border-color": "var(--color-border)"},
		axes.IntentBrand:    {"border-color": "var(--color-accent)"},
		axes.IntentPositive: {"border-color": "var(--color-success)"},
		axes.IntentCaution:  {"border-color": "var(--color-warning)"},
		axes.IntentCritical: {"border-color": "var(--color-error)"},
		axes.IntentInfo:     {"border-color": "var(--color-info)"},
	}

	containerDensity = map[axes.Density]style.Fragment{
		axes.DensityCompact:     {"gap": "var(--space-1)", "padding": "var(--space-1)"},
		axes.DensityStandard:    {"gap": "var(--space-2)", "padding": "var(--space-2)"},
		axes.DensityComfortable: {"gap": "var(--space-4)", "padding": "var(--space-4)"},
	}

	containerProminence = map[axes.Prominence]style.Fragment{
		axes.ProminenceHero:     {"background-color": "var(--color-surface-raised)", "box-shadow": "var(--shadow-lg)"},
		axes.ProminenceStrong:   {"background-color": "var(--color-surface-raised)"},
		axes.ProminenceStandard: {"background-color": "var(--color-surface)"},
		axes.ProminenceSubtle:   {"background-color": "transparent"},
	}

	actionProminence = map[axes.Prominence]style.Fragment{
		axes.ProminenceHero:     {"background-color": "var(--color-accent)", "color": "var(--color-on-accent)"},
		axes.ProminenceStrong:   {"background-color": "var(--color-accent)", "color": "var(--color-on-accent)"},
		axes.ProminenceStandard: {"background-color": "var(--color-surface-raised)", "color": "var(--color-text)"},
		axes.ProminenceSubtle:   {"background-color": "transparent", "color": "var(--color-text-muted)"},
	}

	actionDensity = map[axes.Density]style.Fragment{
		axes.DensityCompact:     {"height": "var(--control-h-sm)", "padding": "0 var(--space-2)"},
		axes.DensityStandard:    {"height": "var(--control-h-md)", "padding": "0 var(--space-3)"},
		axes.DensityComfortable: {"height": "var(--control-h-lg)", "padding": "0 var(--space-4)"},
	}
)

// Builtins returns the startup role tables keyed by domain.
func Builtins() map[Domain]map[string]Config {
	return map[Domain]map[string]Config{
		DomainText:      textRoles(),
		DomainContainer: containerRoles(),
		DomainOverlay:   overlayRoles(),
		DomainPage:      pageRoles(),
		DomainAction:    actionRoles(),
	}
}

// RegisterBuiltins registers every builtin role into r.
func RegisterBuiltins(r *Registry) error {
	var errs []error
	for domain, table := range Builtins() {
		for name, cfg := range table {
			if err := r.Register(domain, name, cfg); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func densityOverride(role string, d axes.Density, f style.Fragment) CompoundOverride {
	return CompoundOverride{When: Predicate{Role: role, Density: d}, Style: f}
}

func textRoles() map[string]Config {
	text := func(tag string, base style.Fragment, compound ...CompoundOverride) Config {
		return Config{
			Kind:       KindSimple,
			Tag:        tag,
			Base:       base,
			Prominence: textProminence,
			Intent:     textIntent,
			Align:      textAlign,
			Compound:   compound,
		}
	}

	title := text("h4", style.Fragment{"font-weight": "600"},
		CompoundOverride{
			When:  Predicate{Role: "Title", Prominence: axes.ProminenceHero, Density: axes.DensityCompact},
			Style: style.Fragment{"font-size": "var(--font-size-xl)"},
		},
		CompoundOverride{
			When:  Predicate{Role: "Title", Prominence: axes.ProminenceHero, Density: axes.DensityComfortable},
			Style: style.Fragment{"font-size": "var(--font-size-4xl)"},
		},
		CompoundOverride{
			When:  Predicate{Role: "Title", Prominence: axes.ProminenceStandard, Density: axes.DensityCompact},
			Style: style.Fragment{"font-size": "var(--font-size-xs)"},
		},
		CompoundOverride{
			When:  Predicate{Role: "Title", Prominence: axes.ProminenceStandard, Density: axes.DensityComfortable},
			Style: style.Fragment{"font-size": "var(--font-size-sm)"},
		},
	)
	title.TagByProminence = map[axes.Prominence]string{
		axes.ProminenceHero:     "h1",
		axes.ProminenceStrong:   "h2",
		axes.ProminenceStandard: "h3",
	}
	title.Description = "Heading; level follows prominence"

	body := text("p", style.Fragment{"font-weight": "400"},
		densityOverride("Body", axes.DensityCompact, style.Fragment{"font-size": "var(--font-size-xs)"}),
		densityOverride("Body", axes.DensityComfortable, style.Fragment{"font-size": "var(--font-size-base)"}),
	)
	body.Description = "Running text"

	label := text("span", style.Fragment{"font-size": "var(--font-size-sm)", "font-weight": "500"},
		densityOverride("Label", axes.DensityCompact, style.Fragment{"font-size": "var(--font-size-xs)"}),
		densityOverride("Label", axes.DensityComfortable, style.Fragment{"font-size": "var(--font-size-sm)"}),
	)
	label.Description = "Short label"

	caption := text("small", style.Fragment{"font-size": "var(--font-size-xs)", "color": "var(--color-text-muted)"},
		densityOverride("Caption", axes.DensityCompact, style.Fragment{"font-size": "10px"}),
		densityOverride("Caption", axes.DensityComfortable, style.Fragment{"font-size": "var(--font-size-xs)"}),
	)
	caption.Description = "Secondary caption"

	code := text("code", style.Fragment{
		"font-family":      "var(--font-mono)",
		"font-size":        "var(--font-size-sm)",
		"background-color": "var(--color-surface-sunken)",
		"padding":          "2px 4px",
		"border-radius":    "var(--radius-sm)",
	},
		densityOverride("Code", axes.DensityCompact, style.Fragment{"font-size": "var(--font-size-xs)", "padding": "0 2px"}),
		densityOverride("Code", axes.DensityComfortable, style.Fragment{"font-size": "var(--font-size-sm)", "padding": "4px 6px"}),
	)
	code.Description = "Inline code"

	return map[string]Config{
		"Title":   title,
		"Body":    body,
		"Label":   label,
		"Caption": caption,
		"Code":    code,
	}
}

func containerRoles() map[string]Config {
	container := func(aria string, base style.Fragment, desc string) Config {
		cfg := Config{
			Kind:        KindSimple,
			Tag:         "div",
			Base:        base,
			Density:     containerDensity,
			Description: desc,
		}
		if aria != "" {
			cfg.Aria = map[string]string{"role": aria}
		}
		return cfg
	}

	card := container("article", style.Fragment{
		"display":        "flex",
		"flex-direction": "column",
		"border":         "1px solid var(--color-border)",
		"border-radius":  "var(--radius-lg)",
	}, "Bordered card surface")
	card.Prominence = containerProminence
	card.Intent = surfaceIntent

	list := container("list", style.Fragment{"display": "flex", "flex-direction": "column"}, "Vertical list")
	list.Compound = []CompoundOverride{
		densityOverride("List", axes.DensityCompact, style.Fragment{"gap": "0", "padding": "0"}),
	}

	return map[string]Config{
		"Container": container("", style.Fragment{"display": "flex", "flex-direction": "column"}, "Generic stack"),
		"Inline":    container("", style.Fragment{"display": "flex", "flex-direction": "row", "align-items": "center"}, "Horizontal stack"),
		"Split":     container("", style.Fragment{"display": "flex", "flex-direction": "row", "justify-content": "space-between"}, "Two-sided row"),
		"Grid":      container("grid", style.Fragment{"display": "grid"}, "Grid container"),
		"Card":      card,
		"List":      list,
		"Form":      container("form", style.Fragment{"display": "flex", "flex-direction": "column"}, "Form group"),
		"Toolbar": container("toolbar", style.Fragment{
			"display":     "flex",
			"align-items": "center",
			"height":      "var(--toolbar-h)",
		}, "Action toolbar"),
		"Tabs":  container("tablist", style.Fragment{"display": "flex", "border-bottom": "1px solid var(--color-border)"}, "Tab strip"),
		"Panel": container("region", style.Fragment{"display": "flex", "flex-direction": "column", "overflow": "auto"}, "Scrollable panel region"),
	}
}

func overlayRoles() map[string]Config {
	overlay := func(aria map[string]string, base style.Fragment, backdrop, dismiss bool, z, placement, desc string) Config {
		return Config{
			Kind:   KindSimple,
			Tag:    "div",
			Aria:   aria,
			Base:   base,
			Intent: surfaceIntent,
			Meta: map[string]string{
				"backdrop":  boolString(backdrop),
				"dismiss":   boolString(dismiss),
				"z-index":   z,
				"placement": placement,
			},
			Description: desc,
		}
	}
	modal := map[string]string{"role": "dialog", "aria-modal": "true"}

	return map[string]Config{
		"Dialog": overlay(modal, style.Fragment{
			"background-color": "var(--color-surface-overlay)",
			"border-radius":    "var(--radius-lg)",
			"box-shadow":       "var(--shadow-xl)",
			"max-width":        "32rem",
			"max-height":       "90vh",
			"overflow":         "auto",
			"z-index":          "50",
		}, true, true, "50", "center", "Modal dialog with backdrop and dismiss support"),
		"Drawer": overlay(modal, style.Fragment{
			"position":         "fixed",
			"top":              "0",
			"bottom":           "0",
			"background-color": "var(--color-surface-overlay)",
			"box-shadow":       "var(--shadow-xl)",
			"overflow":         "auto",
			"z-index":          "50",
		}, true, true, "50", "right", "Side panel drawer with backdrop"),
		"Sheet": overlay(modal, style.Fragment{
			"position":         "fixed",
			"width":            "100%",
			"max-height":       "80vh",
			"background-color": "var(--color-surface-overlay)",
			"overflow":         "auto",
			"z-index":          "50",
		}, true, true, "50", "bottom", "Bottom or top sheet with full width"),
		"Popover": overlay(map[string]string{"role": "dialog"}, style.Fragment{
			"position":         "absolute",
			"background-color": "var(--color-surface-floating)",
			"border-radius":    "var(--radius-md)",
			"box-shadow":       "var(--shadow-lg)",
			"z-index":          "40",
		}, false, true, "40", "center", "Lightweight popover without backdrop"),
		"Toast": overlay(map[string]string{"role": "status", "aria-live": "polite"}, style.Fragment{
			"position":         "fixed",
			"background-color": "var(--color-surface-floating)",
			"border-radius":    "var(--radius-md)",
			"z-index":          "60",
		}, false, true, "60", "bottom", "Transient notification"),
		"Tooltip": overlay(map[string]string{"role": "tooltip"}, style.Fragment{
			"position":         "absolute",
			"font-size":        "var(--font-size-xs)",
			"background-color": "var(--color-surface-inverse)",
			"pointer-events":   "none",
			"z-index":          "70",
		}, false, false, "70", "top", "Hover hint"),
	}
}

func pageRoles() map[string]Config {
	page := func(aria string, base style.Fragment, height, scroll, overflow, desc string) Config {
		return Config{
			Kind: KindSimple,
			Tag:  "div",
			Aria: map[string]string{"role": aria},
			Base: base,
			Meta: map[string]string{
				"height":   height,
				"scroll":   scroll,
				"overflow": overflow,
			},
			Description: desc,
		}
	}

	return map[string]Config{
		"Document": page("main", style.Fragment{
			"position":       "relative",
			"min-height":     "100vh",
			"width":          "100%",
			"overflow-y":     "auto",
			"display":        "flex",
			"flex-direction": "column",
		}, "content", "window", "auto", "Standard document with window scroll"),
		"Application": page("application", style.Fragment{
			"position": "relative",
			"height":   "100vh",
			"width":    "100vw",
			"overflow": "hidden",
			"display":  "grid",
		}, "viewport", "container", "hidden", "Full-viewport application using grid layout"),
		"Focus": page("main", style.Fragment{
			"position":        "relative",
			"min-height":      "100vh",
			"display":         "flex",
			"align-items":     "center",
			"justify-content": "center",
		}, "viewport", "none", "hidden", "Centered single-task page"),
		"Fullscreen": page("main", style.Fragment{
			"position": "fixed",
			"inset":    "0",
			"overflow": "hidden",
		}, "viewport", "none", "hidden", "Edge-to-edge fixed page"),
	}
}

func actionRoles() map[string]Config {
	action := func(tag, aria, renderer, desc string) Config {
		return Config{
			Kind:        KindComplex,
			Tag:         tag,
			Aria:        map[string]string{"role": aria},
			Base:        style.Fragment{"display": "inline-flex", "align-items": "center", "cursor": "pointer"},
			Prominence:  actionProminence,
			Density:     actionDensity,
			Renderer:    renderer,
			Description: desc,
		}
	}

	link := action("a", "link", "LinkAction", "Navigation link")
	link.Prominence = nil
	link.Density = nil
	link.Intent = textIntent

	handle := action("div", "separator", "ResizeHandleAction", "Grid-aware resize handle")
	handle.Prominence = nil
	handle.Density = nil
	handle.Base = style.Fragment{"cursor": "col-resize", "user-select": "none"}

	return map[string]Config{
		"Button":       action("button", "button", "ButtonAction", "Standard button with prominence and intent variations"),
		"IconButton":   action("button", "button", "IconButtonAction", "Icon-only button"),
		"Option":       action("button", "option", "OptionAction", "Dense option button"),
		"Tab":          action("button", "tab", "TabAction", "Tab item"),
		"MenuItem":     action("button", "menuitem", "MenuItemAction", "Menu item"),
		"Link":         link,
		"ResizeHandle": handle,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
