// Package render provides the cell-grid compositor shared by the splash scene and the static panel.
//
// A Canvas owns a width×height grid of cells. Painters write into it every frame; Render emits
// the grid at an origin with one absolute cursor move per row, leaving protected cells (regions
// owned by an inline image overlay) untouched on screen. RenderInline emits the same grid without
// cursor addressing for capture contexts.
package render
