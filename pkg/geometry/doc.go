// Package geometry holds the pure spatial logic of the engine: resolving where within a zone a
// pointer would drop an item, and finding the next zone in a direction for keyboard navigation.
//
// Every function is side-effect free and safe to call any number of times per frame.
package geometry
