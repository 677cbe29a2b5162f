// Package grid implements the in-memory frame buffer: a canvas of styled
// character cells and the window that reconciles it to the terminal.
//
// The render strategy is a full-grid repaint per frame with attribute
// coalescing: every cell's rune is emitted, but a color command is issued
// only when the color differs from the previously emitted cell. Canvas
// cells are plain values; out-of-bounds access reports absent instead of
// panicking.
package grid
