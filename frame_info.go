package jpegroi

// FrameInfo describes the geometry established by the SOF0 segment:
// pixel dimensions (always multiples of 8) and the horizontal chroma
// subsampling factor (1 for 4:4:4, 2 for 4:2:2).
type FrameInfo struct {
    WidthPx               uint16
    HeightPx              uint16
    HorizChromaSubsFactor uint8
}

// WidthBlocks returns the frame width in 8x8 blocks.
func (f FrameInfo) WidthBlocks( ) uint16 {
    return f.WidthPx / 8
}

// HeightBlocks returns the frame height in 8x8 blocks.
func (f FrameInfo) HeightBlocks( ) uint16 {
    return f.HeightPx / 8
}

// IsSet reports whether SOF0 parsing has populated this FrameInfo.
func (f FrameInfo) IsSet( ) bool {
    return f.HorizChromaSubsFactor != 0
}

// clear resets FrameInfo to its zero value.
func (f *FrameInfo) clear( ) {
    *f = FrameInfo{}
}
