// Command roidump decodes a region of interest from a baseline JFIF file
// and writes it as a PGM (P5) grayscale image. It exists purely as an
// ambient demonstration of the jpegroi library; file I/O, PGM output and
// flag parsing are explicitly outside the library's core.
package main

import (
    "bufio"
    "flag"
    "fmt"
    "os"

    "github.com/markoduksi/jpegroi"
)

func main( ) {
    in := flag.String( "in", "", "path to a baseline JFIF file" )
    out := flag.String( "out", "", "path to write the decoded PGM (P5) image" )
    x1 := flag.Uint( "x1", 0, "ROI left, in 8x8 blocks" )
    y1 := flag.Uint( "y1", 0, "ROI top, in 8x8 blocks" )
    x2 := flag.Uint( "x2", 0, "ROI right, in 8x8 blocks (0 = full frame width)" )
    y2 := flag.Uint( "y2", 0, "ROI bottom, in 8x8 blocks (0 = full frame height)" )
    dstW := flag.Uint( "w", 0, "destination width in pixels (0 = no downscaling)" )
    dstH := flag.Uint( "h", 0, "destination height in pixels (0 = no downscaling)" )
    verbose := flag.Bool( "v", false, "verbose decoder diagnostics" )
    flag.Parse( )

    if *in == "" || *out == "" {
        fmt.Fprintln( os.Stderr, "roidump: -in and -out are required" )
        os.Exit( 1 )
    }

    buf, err := os.ReadFile( *in )
    if err != nil {
        fmt.Fprintf( os.Stderr, "roidump: reading %s: %v\n", *in, err )
        os.Exit( 1 )
    }

    dec := &jpegroi.Decoder{ Verbose: *verbose }
    if !dec.Assign( buf ) {
        fmt.Fprintf( os.Stderr, "roidump: %v\n", dec.LastError( ) )
        os.Exit( 1 )
    }

    widthBlocks := uint( dec.GetWidth( ) ) / 8
    heightBlocks := uint( dec.GetHeight( ) ) / 8
    right, bottom := *x2, *y2
    if right == 0 {
        right = widthBlocks
    }
    if bottom == 0 {
        bottom = heightBlocks
    }

    roi := jpegroi.NewBoundingBox( uint16( *x1 ), uint16( *y1 ), uint16( right ), uint16( bottom ) )

    pxW := 8 * roi.Width( )
    pxH := 8 * roi.Height( )

    var writer jpegroi.BlockWriter = &jpegroi.BasicBlockWriter{}
    if *dstW != 0 && *dstH != 0 {
        writer = jpegroi.NewDownscalingBlockWriter( uint16( *dstW ), uint16( *dstH ) )
        pxW, pxH = uint16( *dstW ), uint16( *dstH )
    }

    dst := make( []byte, int( pxW )*int( pxH ) )
    if !dec.LumaDecodeWith( dst, roi, writer ) {
        fmt.Fprintf( os.Stderr, "roidump: %v\n", dec.LastError( ) )
        os.Exit( 1 )
    }

    if err := writePGM( *out, dst, int( pxW ), int( pxH ) ); err != nil {
        fmt.Fprintf( os.Stderr, "roidump: writing %s: %v\n", *out, err )
        os.Exit( 1 )
    }

    fmt.Printf( "roidump: wrote %dx%d to %s\n", pxW, pxH, *out )
}

func writePGM( path string, pix []byte, width, height int ) error {
    f, err := os.Create( path )
    if err != nil {
        return err
    }
    defer f.Close( )

    w := bufio.NewWriter( f )
    fmt.Fprintf( w, "P5\n%d %d\n255\n", width, height )
    if _, err := w.Write( pix ); err != nil {
        return err
    }
    return w.Flush( )
}
