package render

import (
	theme "github.com/goliatone/go-theme"
)

// themeContext flattens a resolved theme configuration into the map shape
// templates consume under the `theme` key.
func themeContext(cfg *theme.RendererConfig) map[string]any {
	out := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
	}
	if len(cfg.Tokens) > 0 {
		out["tokens"] = copyStringMap(cfg.Tokens)
	}
	if len(cfg.CSSVars) > 0 {
		out["cssVars"] = copyStringMap(cfg.CSSVars)
	}
	if len(cfg.Partials) > 0 {
		out["partials"] = copyStringMap(cfg.Partials)
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
