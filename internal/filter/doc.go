// Package filter implements raster post-processing effects that operate on
// an already-rendered gg.Pixmap rather than on a polygon mid-pipeline. It is
// a standalone utility layer, not part of the per-draw Shader/Compositor
// path: the per-draw drop shadow lives in the root package's shadow.go and
// uses its own box-blur instead of this package's Gaussian kernel, to avoid
// the import cycle importing this package from root would create.
//
// Effects provided:
//   - Gaussian blur (separable, O(n) per radius)
//   - Drop shadow (blur + offset + colorize)
//   - Color matrix transformations
//
// All filters are designed for:
//   - Zero-allocation hot paths where possible
//   - Cache-friendly memory access patterns
//   - SIMD-compatible data layouts
//
// Performance targets (1080p):
//   - Blur (r=5): <5ms
//   - Blur (r=20): <15ms
//   - Drop Shadow: <10ms
//   - Color Matrix: <2ms
package filter
