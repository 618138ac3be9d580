// Package scene defines the declarative descriptors every generator emits.
//
// A [Scene] is a flat list of [Element] values positioned in percent
// coordinates of their container. Elements never carry keyframe text;
// an [Animation] names a pre-declared timeline and supplies its
// parameters as data:
//
//   - [Organelle]: a named, positioned diagram node
//   - [Element]: a positioned visual with optional children
//   - [Animation]: timeline reference plus duration, delay and params
//
// Exporters in package export turn a Scene into CSS, HTML or SVG.
package scene
