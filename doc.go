// Package jpegroi provides a memory-efficient, allocation-free decoder for
// a subset of baseline JPEG (JFIF) images, specialized for extracting the
// luminance (Y) channel from a region of interest expressed in 8x8 block
// coordinates. Decoded blocks are streamed through a pluggable BlockWriter,
// either a plain 1:1 copy or a streaming rational-factor downscaler, so the
// full image is never materialized in memory.
//
// Only the baseline subset is supported: 8-bit precision, 3 components,
// 4:4:4 or 4:2:2 chroma subsampling, no restart markers, no progressive or
// arithmetic coding modes.
package jpegroi
