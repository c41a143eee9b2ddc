// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package forms

// Palette is the fixed set of category colors offered when creating a
// category. It contains the four colors the server seeds new accounts
// with (indigo, green, amber, red), so a seeded category and a created
// one can share a color.
var Palette = []string{
	"#6366f1", // indigo
	"#8b5cf6", // violet
	"#a855f7", // purple
	"#ec4899", // pink
	"#ef4444", // red
	"#f59e0b", // amber
	"#22c55e", // green
	"#14b8a6", // teal
	"#0ea5e9", // sky
	"#64748b", // slate
}

// DefaultColor preselects the brand indigo in the category form.
const DefaultColor = "#6366f1"

// colorNames maps palette entries to display labels for pickers.
var colorNames = map[string]string{
	"#6366f1": "Indigo",
	"#8b5cf6": "Violet",
	"#a855f7": "Purple",
	"#ec4899": "Pink",
	"#ef4444": "Red",
	"#f59e0b": "Amber",
	"#22c55e": "Green",
	"#14b8a6": "Teal",
	"#0ea5e9": "Sky",
	"#64748b": "Slate",
}

// InPalette reports whether a color is one of the palette entries.
func InPalette(color string) bool {
	_, ok := colorNames[color]
	return ok
}

// ColorName returns a display label for a palette color. Colors outside
// the palette (server data predating a palette change) fall back to the
// hex string itself.
func ColorName(color string) string {
	if name, ok := colorNames[color]; ok {
		return name
	}
	return color
}
