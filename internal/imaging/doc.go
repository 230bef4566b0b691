// Package imaging loads image files and samples pixel colors for the MCP server.
//
// This package owns the file-facing side of the color tools: decoding images
// from disk (with optional caching), reporting file metadata, and sampling
// individual pixels in multiple color representations. The clustering
// analysis itself lives in the dominant package; imaging only turns paths
// into image.Image values for it.
//
// # Supported Formats
//
// PNG, JPEG, GIF, and WebP decoders are registered. Decoding sniffs the file
// content, so a mislabeled extension still decodes; only the metadata format
// field relies on the extension.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Sampling functions are
// stateless and can be called concurrently on different images. Operations
// on the same image should be synchronized by the caller if the image is mutable.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - File I/O errors during image loading
//   - Files that are not decodable images
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads. Large images may consume significant memory when cached.
// Consider using Evict() or Clear() to manage memory for long-running processes.
package imaging
