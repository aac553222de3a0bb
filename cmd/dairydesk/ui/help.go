package ui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# dairydesk keys

## Everywhere
- ` + "`?`" + ` toggle this help
- ` + "`q` / `ctrl+c`" + ` quit
- ` + "`esc`" + ` back to the dashboard

## Dashboard
- ` + "`f`" + ` farms
- ` + "`c`" + ` cattle of the active farm
- ` + "`r`" + ` reload
- ` + "`7` / `3`" + ` 7-day / 30-day production window (owners)
- ` + "`ctrl+l`" + ` log out

## Farms
- ` + "`up` / `down`" + ` select, ` + "`enter`" + ` set active farm
- ` + "`a`" + ` add a farm (owners)

## Cattle
- ` + "`a`" + ` add an animal

## Forms
- ` + "`tab` / `shift+tab`" + ` move between fields
- ` + "`enter`" + ` submit, ` + "`esc`" + ` cancel
`

// RenderHelp renders the key-binding help as terminal markdown. Falls back
// to the raw markdown if the renderer cannot be built.
func RenderHelp(styles Styles, width int) string {
	var opts []glamour.TermRendererOption
	if styles.Theme.IsDark {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath("light"))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(min(width, 80)))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
