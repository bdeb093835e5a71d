package jpegroi

import "fmt"

// Decoder is the façade over header parsing and ROI luma decoding. The
// zero value is unusable until Assign succeeds; New is a convenience
// constructor that calls Assign immediately.
type Decoder struct {
    cursor ByteCursor
    bitR   BitReader
    quant  Dequantizer
    huff   huffmanTables
    hdec   huffmanDecoder
    frame  FrameInfo

    hasValidHeader bool
    lastErr        error

    // Verbose gates fmt.Printf diagnostics during header parsing and
    // block decode, in the style of the teacher's Control flags.
    Verbose bool
}

// New constructs a Decoder and assigns buf to it.
func New( buf []byte ) *Decoder {
    d := &Decoder{}
    d.Assign( buf )
    return d
}

// Assign parses buf's header, resetting any previously decoded state.
// It reports whether the header reached HEADER_OK.
func (d *Decoder) Assign( buf []byte ) bool {
    verbose := d.Verbose
    *d = Decoder{ Verbose: verbose }

    d.cursor = newByteCursor( buf )
    d.bitR = newBitReader( &d.cursor )

    hp := newHeaderParser( &d.quant, &d.huff, &d.frame, d.Verbose )
    final := hp.parse( &d.cursor, &d.bitR )
    if final != stateHeaderOK {
        d.lastErr = wrapErr( "Assign", errorForState( final ) )
        return false
    }

    d.hdec = newHuffmanDecoder( &d.huff )
    d.hasValidHeader = true
    return true
}

// LastError returns the error from the most recent failed operation,
// or nil if the last operation succeeded.
func (d *Decoder) LastError( ) error {
    return d.lastErr
}

// GetWidth returns the frame width in pixels, or 0 if no valid header
// has been parsed.
func (d *Decoder) GetWidth( ) uint16 {
    if !d.hasValidHeader {
        return 0
    }
    return d.frame.WidthPx
}

// GetHeight returns the frame height in pixels, or 0 if no valid header
// has been parsed.
func (d *Decoder) GetHeight( ) uint16 {
    if !d.hasValidHeader {
        return 0
    }
    return d.frame.HeightPx
}

// validateROI checks roi against the frame's block dimensions.
func (d *Decoder) validateROI( roi BoundingBox ) bool {
    if !d.hasValidHeader {
        d.lastErr = wrapErr( "validateROI", ErrROI )
        return false
    }
    widthBlocks := d.frame.WidthBlocks( )
    heightBlocks := d.frame.HeightBlocks( )
    if roi.TopLeftX >= roi.BottomRightX || roi.TopLeftY >= roi.BottomRightY ||
        roi.Width( ) > widthBlocks || roi.Height( ) > heightBlocks {
        d.lastErr = wrapErr( "validateROI", ErrROI )
        return false
    }
    return true
}

// LumaDecode decodes every luma block within roi into dst through a
// default BasicBlockWriter.
func (d *Decoder) LumaDecode( dst []byte, roi BoundingBox ) bool {
    return d.LumaDecodeWith( dst, roi, &BasicBlockWriter{} )
}

// LumaDecodeWith decodes every luma block within roi into dst through
// the caller-supplied writer, which is Init'd with the ROI's pixel
// dimensions.
func (d *Decoder) LumaDecodeWith( dst []byte, roi BoundingBox, w BlockWriter ) bool {
    if !d.validateROI( roi ) {
        return false
    }

    widthBlocks := d.frame.WidthBlocks( )
    dstWidthPx := 8 * roi.Width( )
    dstHeightPx := 8 * roi.Height( )
    w.Init( dst, dstWidthPx, dstHeightPx )

    var block [64]int
    for row := roi.TopLeftY; row < roi.BottomRightY; row++ {
        lumaIdx := int( row )*int( widthBlocks ) + int( roi.TopLeftX )
        for col := roi.TopLeftX; col < roi.BottomRightX; col++ {
            if err := d.hdec.decodeLumaBlock( &d.bitR, &block, lumaIdx, int( d.frame.HorizChromaSubsFactor ) ); err != nil {
                d.lastErr = wrapErr( "LumaDecodeWith", err )
                if d.Verbose {
                    fmt.Printf( "Huffman decoding FAILED: %v\n", err )
                }
                return false
            }

            d.quant.Transform( &block )
            zigZagTransform( &block )
            idctTransform( &block )
            rangeNormalize( &block )
            w.Write( &block )

            lumaIdx++
        }
    }

    return true
}

// DCLumaDecode decodes only the DC coefficient of every luma block
// within roi, writing one low-pass byte per block with output stride
// roi.Width().
func (d *Decoder) DCLumaDecode( dst []byte, roi BoundingBox ) bool {
    if !d.validateROI( roi ) {
        return false
    }

    widthBlocks := d.frame.WidthBlocks( )
    dstStride := int( roi.Width( ) )

    var block [64]int
    for row := roi.TopLeftY; row < roi.BottomRightY; row++ {
        lumaIdx := int( row )*int( widthBlocks ) + int( roi.TopLeftX )
        for col := roi.TopLeftX; col < roi.BottomRightX; col++ {
            if err := d.hdec.decodeLumaBlock( &d.bitR, &block, lumaIdx, int( d.frame.HorizChromaSubsFactor ) ); err != nil {
                d.lastErr = wrapErr( "DCLumaDecode", err )
                return false
            }

            dc := block[0]
            d.quant.TransformDC( &dc )
            lowPassLuma := ( dc + 1024 ) / 8
            dst[int( row-roi.TopLeftY )*dstStride+int( col-roi.TopLeftX )] = clampPixel( lowPassLuma )

            lumaIdx++
        }
    }

    return true
}
