package terminal

// TrueColor palette shared by the splash scene and the static panel
// Ordered dark-to-light within each hue group

var (
	// --- Achromatic ---
	Black     = RGB{0, 0, 0}
	Obsidian  = RGB{20, 20, 30} // Blue-black
	DimGray   = RGB{55, 55, 55}
	IronGray  = RGB{80, 80, 80}
	SlateBlue = RGB{100, 100, 120} // Border gray
	Gray      = RGB{120, 120, 120}
	Ash       = RGB{140, 140, 140}
	Silver    = RGB{180, 180, 180}
	LightGray = RGB{200, 200, 200}
	NearWhite = RGB{250, 250, 250}
	White     = RGB{255, 255, 255}

	// --- Earth ---
	DeepOcean = RGB{10, 40, 110}
	Ocean     = RGB{30, 90, 180}
	Shallows  = RGB{70, 140, 210}
	Forest    = RGB{40, 110, 50}
	Grassland = RGB{90, 150, 60}
	Desert    = RGB{190, 165, 100}
	IceCap    = RGB{235, 240, 250}

	// --- Moon ---
	Regolith = RGB{170, 170, 160}
	Mare     = RGB{110, 110, 105}
)
