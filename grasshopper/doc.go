// Package grasshopper implements the canonical command protocol spoken by a
// Grasshopper node-graph host together with the semantic normalization layer
// that sits in front of it: component alias resolution, slider range
// inference and deterministic input-port assignment. The transport client
// opens one TCP connection per exchange and converts every fault into a
// structured Response value.
package grasshopper
