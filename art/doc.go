// Package art models the artistic color wheel: the three primary colors, the
// secondary colors made by mixing two of them, and rendering of both to a
// terminal or an HTML page.
package art
