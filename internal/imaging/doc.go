package imaging

// Package imaging holds the bitmap-level helpers used by export and preview:
// decoding with every registered codec, alpha flattening for JPEG output,
// lossless palette reduction for PNG output, and preview thumbnails.
