package jpegroi

import "math"

// zigZagScanToNatural[i] gives the natural (row-major) index of the
// coefficient stored at zig-zag scan position i. Cross-checked against
// the teacher's own zigZagRowCol table (same permutation, transposed
// representation).
var zigZagScanToNatural = [64]int{
    0, 1, 8, 16, 9, 2, 3, 10,
    17, 24, 32, 25, 18, 11, 4, 5,
    12, 19, 26, 33, 40, 48, 41, 34,
    27, 20, 13, 6, 7, 14, 21, 28,
    35, 42, 49, 56, 57, 50, 43, 36,
    29, 22, 15, 23, 30, 37, 44, 51,
    58, 59, 52, 45, 38, 31, 39, 46,
    53, 60, 61, 54, 47, 55, 62, 63,
}

// zigZagTransform reorders block from zig-zag scan order into natural
// (row-major) order, using a temporary copy to avoid aliasing.
func zigZagTransform( block *[64]int ) {
    var tmp [64]int
    tmp = *block
    for i := 0; i < 64; i++ {
        block[zigZagScanToNatural[i]] = tmp[i]
    }
}

// AAN IDCT constants, precomputed once at package init.
var (
    idctM1, idctM2, idctM3, idctM4, idctM5                         float64
    idctS0, idctS1, idctS2, idctS3, idctS4, idctS5, idctS6, idctS7 float64
)

func init( ) {
    m0 := 2 * math.Cos( 1.0/16.0*2*math.Pi )
    m1 := 2 * math.Cos( 2.0/16.0*2*math.Pi )
    m5 := 2 * math.Cos( 3.0/16.0*2*math.Pi )

    idctM1 = m1
    idctM3 = m1
    idctM5 = m5
    idctM2 = m0 - m5
    idctM4 = m0 + m5

    idctS0 = math.Cos( 0.0/16.0*math.Pi ) / math.Sqrt( 8 )
    idctS1 = math.Cos( 1.0/16.0*math.Pi ) / 2
    idctS2 = math.Cos( 2.0/16.0*math.Pi ) / 2
    idctS3 = math.Cos( 3.0/16.0*math.Pi ) / 2
    idctS4 = math.Cos( 4.0/16.0*math.Pi ) / 2
    idctS5 = math.Cos( 5.0/16.0*math.Pi ) / 2
    idctS6 = math.Cos( 6.0/16.0*math.Pi ) / 2
    idctS7 = math.Cos( 7.0/16.0*math.Pi ) / 2
}

// idctPass1D runs one 1-D AAN inverse DCT butterfly, reading 8 values via
// get(i) and writing 8 results via set(i, v).
func idctPass1D( get func( int ) float64, set func( int, float64 ) ) {
    g0 := get( 0 ) * idctS0
    g1 := get( 4 ) * idctS4
    g2 := get( 2 ) * idctS2
    g3 := get( 6 ) * idctS6
    g4 := get( 5 ) * idctS5
    g5 := get( 1 ) * idctS1
    g6 := get( 7 ) * idctS7
    g7 := get( 3 ) * idctS3

    f0, f1, f2, f3 := g0, g1, g2, g3
    f4 := g4 - g7
    f5 := g5 + g6
    f6 := g5 - g6
    f7 := g4 + g7

    e0, e1 := f0, f1
    e2 := f2 - f3
    e3 := f2 + f3
    e4 := f4
    e5 := f5 - f7
    e6 := f6
    e7 := f5 + f7
    e8 := f4 + f6

    d0, d1, d3 := e0, e1, e3
    d2 := e2 * idctM1
    d4 := e4 * idctM2
    d5 := e5 * idctM3
    d6 := e6 * idctM4
    d7 := e7
    d8 := e8 * idctM5

    c0 := d0 + d1
    c1 := d0 - d1
    c2 := d2 - d3
    c3 := d3
    c4 := d4 + d8
    c5 := d5 + d7
    c6 := d6 - d8
    c7 := d7
    c8 := c5 - c6

    b0 := c0 + c3
    b1 := c1 + c2
    b2 := c1 - c2
    b3 := c0 - c3
    b4 := c4 - c8
    b5 := c8
    b6 := c6 - c7
    b7 := c7

    set( 0, b0+b7 )
    set( 1, b1+b6 )
    set( 2, b2+b5 )
    set( 3, b3+b4 )
    set( 4, b3-b4 )
    set( 5, b2-b5 )
    set( 6, b1-b6 )
    set( 7, b0-b7 )
}

// idctTransform applies the 8x8 AAN inverse DCT: one pass along columns
// into an intermediate buffer, then one pass along rows back into block,
// with final values rounded to the nearest integer.
func idctTransform( block *[64]int ) {
    var tmp [64]float64

    for col := 0; col < 8; col++ {
        idctPass1D(
            func( row int ) float64 { return float64( block[row*8+col] ) },
            func( row int, v float64 ) { tmp[row*8+col] = v },
        )
    }

    for row := 0; row < 8; row++ {
        idctPass1D(
            func( col int ) float64 { return tmp[row*8+col] },
            func( col int, v float64 ) { block[row*8+col] = int( math.Round( v ) ) },
        )
    }
}

// rangeNormalize shifts block values from signed [-128,127]-centered
// level to unsigned pixel range, clamping to [0,255].
func rangeNormalize( block *[64]int ) {
    for i := range block {
        v := block[i] + 128
        if v < 0 {
            v = 0
        } else if v > 255 {
            v = 255
        }
        block[i] = v
    }
}
