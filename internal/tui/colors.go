package tui

// Color constants for the taskboard TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (titles, user input)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#2563EB" // Headers, active tab, progress bar
	ColorAccentBright = "#60A5FA" // Highlights

	// State Colors
	ColorError   = "#EF4444" // Hard warnings, overdue
	ColorSuccess = "#22C55E" // Done tasks
	ColorWarning = "#F59E0B" // Soft warnings

	// Status Colors
	ColorToDo       = "#A78BFA" // to_do group
	ColorInProgress = "#F59E0B" // in_progress group
	ColorDone       = "#22C55E" // done group
)
