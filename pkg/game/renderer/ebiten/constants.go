package ebiten

import "image/color"

// Shown behind the canvas when the window is larger than the logical size
var colorBackground = color.RGBA{15, 15, 26, 255}

const baseFontSize = 16.0 // Font size at the default tile size
