// Package flourish builds the site's decorative scenes: background
// particles, drifting yeast cells, the microscope slide, and the four
// research diagrams. Every builder that randomizes draws from an
// injected random.Source, so a fixed seed reproduces a scene exactly.
package flourish
