package icons

// Nerd Font glyphs for the lazyicons UI.
// These require a Nerd Font to display correctly
// See: https://www.nerdfonts.com/cheat-sheet

var enabled = true

// IsEnabled returns whether icons are enabled
func IsEnabled() bool {
	return enabled
}

// SetEnabled enables or disables icons globally
func SetEnabled(e bool) {
	enabled = e
	if !e {
		disableAllIcons()
	}
}

var (
	// Panel title icons
	APP_ICON      = "\U000f0e0b" // 󰸋 (star-box-multiple)
	SETTINGS_ICON = "\U000f0493" // 󰒓 (cog)
	SELECTED_ICON = "\U000f0c51" // 󰱑 (format-list-checks)
	CATALOG_ICON  = "\U000f0570" // 󰕰 (view-grid)
	OUTPUT_ICON   = "\U000f0169" // 󰅩 (code-tags)
	COMMAND_ICON  = "\U000f018d" // 󰆍 (console)
	KEYBOARD_ICON = "\U000f030c" // 󰌌 (keyboard)

	// List markers
	CHECK = "\U000f012c" // 󰄬 (check)
	GRAB  = "\U000f01be" // 󰆾 (cursor-move)

	// Settings
	SUN          = "\U000f0599" // 󰖙 (weather-sunny)
	MOON         = "\U000f0594" // 󰖔 (weather-night)
	ALIGN_LEFT   = "\U000f0262" // 󰉢 (format-align-left)
	ALIGN_CENTER = "\U000f0260" // 󰉠 (format-align-center)

	// Status icons
	LOADING = "\U000f0772" // 󰝲 (loading)
	ERROR   = "\U000f0159" // 󰅙 (close-circle)
	SUCCESS = "\U000f0134" // 󰄴 (check-circle)
	WARNING = "\U000f0026" // 󰀦 (alert)

	// Action icons
	COPY   = "\U000f018f" // 󰆏 (content-copy)
	SEARCH = "\U000f0349" // 󰍉 (magnify)

	// Navigation
	ARROW_LEFT  = "\U000f004d" // 󰁍
	ARROW_RIGHT = "\U000f0054" // 󰁔
)

// disableAllIcons sets all icons to empty strings for graceful fallback
func disableAllIcons() {
	APP_ICON = ""
	SETTINGS_ICON = ""
	SELECTED_ICON = ""
	CATALOG_ICON = ""
	OUTPUT_ICON = ""
	COMMAND_ICON = ""
	KEYBOARD_ICON = ""
	CHECK = "✓"
	GRAB = "≡"
	SUN = ""
	MOON = ""
	ALIGN_LEFT = ""
	ALIGN_CENTER = ""
	LOADING = "…"
	ERROR = "✗"
	SUCCESS = "✓"
	WARNING = "!"
	COPY = ""
	SEARCH = ""
	ARROW_LEFT = "<"
	ARROW_RIGHT = ">"
}

// PatchForNerdFontsV2 updates icons for Nerd Fonts v2 compatibility
func PatchForNerdFontsV2() {
	SETTINGS_ICON = "\uf013"
	CATALOG_ICON = "\uf00a"
	OUTPUT_ICON = "\uf121"
	CHECK = "\uf00c"
}
