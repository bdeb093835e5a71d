package jpegroi

import (
    "bytes"
    "errors"
    "testing"
)

func zeroDelta( r, c int ) int { return 0 }

func TestAssignParsesHeader( t *testing.T ) {
    buf := constantFillJPEG( 160, 120, 128 )
    dec := &Decoder{}
    if !dec.Assign( buf ) {
        t.Fatalf( "Assign failed: %v", dec.LastError( ) )
    }
    if dec.GetWidth( ) != 160 || dec.GetHeight( ) != 120 {
        t.Fatalf( "got %dx%d, want 160x120", dec.GetWidth( ), dec.GetHeight( ) )
    }
}

func TestFullFrameDecodeIdempotent( t *testing.T ) {
    buf := constantFillJPEG( 160, 120, 128 )
    dec := &Decoder{}
    if !dec.Assign( buf ) {
        t.Fatalf( "Assign failed: %v", dec.LastError( ) )
    }

    roi := NewBoundingBox( 0, 0, 20, 15 )
    dst1 := make( []byte, 160*120 )
    if !dec.LumaDecode( dst1, roi ) {
        t.Fatalf( "first LumaDecode failed: %v", dec.LastError( ) )
    }

    dst2 := make( []byte, 160*120 )
    if !dec.LumaDecode( dst2, roi ) {
        t.Fatalf( "second LumaDecode failed: %v", dec.LastError( ) )
    }

    if !bytes.Equal( dst1, dst2 ) {
        t.Fatalf( "decode is not idempotent across repeated calls" )
    }
}

func TestCroppedQuadrantsMatchFullFrame( t *testing.T ) {
    const side = 800
    buf := buildTestJPEG( side, side, func( r, c int ) int {
        if ( r+c )%2 == 0 {
            return 8
        }
        return -8
    } )

    dec := &Decoder{}
    if !dec.Assign( buf ) {
        t.Fatalf( "Assign failed: %v", dec.LastError( ) )
    }

    full := make( []byte, side*side )
    if !dec.LumaDecode( full, NewBoundingBox( 0, 0, side/8, side/8 ) ) {
        t.Fatalf( "full decode failed: %v", dec.LastError( ) )
    }

    quadrant := make( []byte, ( side/2 )*( side/2 ) )
    quadBlocks := uint16( side / 8 / 2 )
    for qy := uint16( 0 ); qy < 2; qy++ {
        for qx := uint16( 0 ); qx < 2; qx++ {
            roi := NewBoundingBox( qx*quadBlocks, qy*quadBlocks, ( qx+1 )*quadBlocks, ( qy+1 )*quadBlocks )
            if !dec.LumaDecode( quadrant, roi ) {
                t.Fatalf( "quadrant (%d,%d) decode failed: %v", qx, qy, dec.LastError( ) )
            }
            for row := 0; row < side/2; row++ {
                for col := 0; col < side/2; col++ {
                    fullRow := int( qy )*( side/2 ) + row
                    fullCol := int( qx )*( side/2 ) + col
                    got := quadrant[row*( side/2 )+col]
                    want := full[fullRow*side+fullCol]
                    if got != want {
                        t.Fatalf( "quadrant (%d,%d) pixel (%d,%d): got %d, want %d", qx, qy, row, col, got, want )
                    }
                }
            }
        }
    }
}

func TestDCLumaDecodeByteCount( t *testing.T ) {
    const side = 800
    buf := constantFillJPEG( side, side, 128 )
    dec := &Decoder{}
    if !dec.Assign( buf ) {
        t.Fatalf( "Assign failed: %v", dec.LastError( ) )
    }

    roi := NewBoundingBox( 0, 0, 100, 100 )
    dst := make( []byte, 100*100 )
    if !dec.DCLumaDecode( dst, roi ) {
        t.Fatalf( "DCLumaDecode failed: %v", dec.LastError( ) )
    }
    if len( dst ) != 10000 {
        t.Fatalf( "got %d bytes, want 10000", len( dst ) )
    }
}

func TestDownscaleMassConservation( t *testing.T ) {
    const src = 120
    buf := constantFillJPEG( src, src, 127 )
    dec := &Decoder{}
    if !dec.Assign( buf ) {
        t.Fatalf( "Assign failed: %v", dec.LastError( ) )
    }

    roi := NewBoundingBox( 0, 0, src/8, src/8 )
    for d := uint16( 1 ); d <= src; d++ {
        w := NewDownscalingBlockWriter( d, d )
        dst := make( []byte, int( d )*int( d ) )
        if !dec.LumaDecodeWith( dst, roi, w ) {
            t.Fatalf( "downscale to %dx%d failed: %v", d, d, dec.LastError( ) )
        }
        for i, px := range dst {
            if px < 126 || px > 128 {
                t.Fatalf( "downscale to %dx%d: pixel %d = %d, want in [126,128]", d, d, i, px )
            }
        }
    }
}

func TestSOF2RejectedAsUnsupportedMarker( t *testing.T ) {
    raw := buildTestJPEG( 64, 64, zeroDelta )
    idx := bytes.Index( raw, []byte{ 0xff, 0xc0 } )
    if idx < 0 {
        t.Fatalf( "fixture does not contain an SOF0 marker" )
    }
    truncated := append( append( []byte{}, raw[:idx]... ), 0xff, 0xc2 )

    dec := &Decoder{}
    if dec.Assign( truncated ) {
        t.Fatalf( "Assign succeeded on a progressive (SOF2) header, want failure" )
    }
    if !errors.Is( dec.LastError( ), ErrUnsupportedMarker ) {
        t.Fatalf( "LastError = %v, want ErrUnsupportedMarker", dec.LastError( ) )
    }
}

func TestValidateROIRejectsOutOfBoundsRegion( t *testing.T ) {
    buf := constantFillJPEG( 64, 64, 128 )
    dec := &Decoder{}
    if !dec.Assign( buf ) {
        t.Fatalf( "Assign failed: %v", dec.LastError( ) )
    }

    cases := []BoundingBox{
        NewBoundingBox( 0, 0, 9, 8 ),  // exceeds width in blocks (8 blocks available)
        NewBoundingBox( 2, 0, 1, 8 ),  // x1 >= x2
        NewBoundingBox( 0, 0, 8, 9 ),  // exceeds height in blocks
    }
    for _, roi := range cases {
        dst := make( []byte, 64*64 )
        if dec.LumaDecode( dst, roi ) {
            t.Fatalf( "LumaDecode succeeded for invalid ROI %+v", roi )
        }
    }
}

func TestAssignRejectsTruncatedBuffer( t *testing.T ) {
    dec := &Decoder{}
    if dec.Assign( []byte{ 0xff, 0xd8 } ) {
        t.Fatalf( "Assign succeeded on a truncated buffer" )
    }
}
