// Package static holds the display page that rotates through the slides.
package static

import "embed"

//go:embed index.html fade.js
var Files embed.FS
