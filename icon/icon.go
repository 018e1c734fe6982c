// Package icon renders UI symbols in the variant chosen with icons.variant:
// emoji, nerd-font glyphs, plain ASCII, kaomoji or Unicode squares.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/key"
)

type iconDef struct {
	emoji, nerd, plain, kaomoji, squares string
}

type variant struct {
	name string
	pick func(*iconDef) string
}

var variants = []variant{
	{"emoji", func(d *iconDef) string { return d.emoji }},
	{"nerd", func(d *iconDef) string { return d.nerd }},
	{"plain", func(d *iconDef) string { return d.plain }},
	{"kaomoji", func(d *iconDef) string { return d.kaomoji }},
	{"squares", func(d *iconDef) string { return d.squares }},
}

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return lo.Map(variants, func(v variant, _ int) string { return v.name })
}

// Get renders i in the configured variant. An unknown variant renders nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	name := viper.GetString(key.IconsVariant)
	v, ok := lo.Find(variants, func(v variant) bool { return v.name == name })
	if !ok {
		return ""
	}

	return v.pick(def)
}
