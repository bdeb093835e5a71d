package jpegroi

import "math"

// DownscalingBlockWriter is a streaming rational-factor area-average
// resampler. It consumes 8x8 source blocks in scan order and emits
// pixels into a fixed destination buffer of dstW*dstH bytes, without
// ever materializing the full source image. dstW/dstH are fixed at
// construction (Go has no compile-time template parameters; see
// DESIGN.md OQ-1), which allocates the row buffer exactly once.
type DownscalingBlockWriter struct {
    dstW, dstH uint16
    rowBuffer  []float64 // len dstW, allocated once at construction

    dst        []byte
    srcWidthPx uint16

    horizScale, vertScale, normFactor float64
    epsHoriz, epsVert                 float64

    blockX, blockY uint16
    edgeBuffer     float64
    columnBuffer   [9]float64
}

// NewDownscalingBlockWriter allocates a writer targeting a dstW x dstH
// destination. Both dimensions must be greater than zero and no greater
// than the source ROI's corresponding dimension; neither this
// constructor nor Init checks this.
func NewDownscalingBlockWriter( dstW, dstH uint16 ) *DownscalingBlockWriter {
    return &DownscalingBlockWriter{
        dstW:      dstW,
        dstH:      dstH,
        rowBuffer: make( []float64, dstW ),
    }
}

// Init implements BlockWriter.
func (w *DownscalingBlockWriter) Init( dst []byte, srcWidthPx, srcHeightPx uint16 ) {
    w.dst = dst
    w.srcWidthPx = srcWidthPx

    w.horizScale = float64( w.dstW ) / float64( srcWidthPx )
    w.vertScale = float64( w.dstH ) / float64( srcHeightPx )
    w.normFactor = w.horizScale * w.vertScale
    w.epsHoriz = 1.0 / float64( srcWidthPx+1 )
    w.epsVert = 1.0 / float64( srcHeightPx+1 )

    w.blockX = 0
    w.blockY = 0
    w.edgeBuffer = 0

    for i := range w.columnBuffer {
        w.columnBuffer[i] = 0
    }
    for i := range w.rowBuffer {
        w.rowBuffer[i] = 0
    }
}

// snapToHorizGrid snaps v to the nearest integer when within epsHoriz
// of it (from either side), correcting accumulated floating point drift so block
// boundaries coincide exactly with grid lines when the algebra demands.
func (w *DownscalingBlockWriter) snapToHorizGrid( v float64 ) float64 {
    floored := float64( int( v + w.epsHoriz ) )
    if v != floored && v-floored < w.epsHoriz {
        return floored
    }
    return v
}

func (w *DownscalingBlockWriter) snapToVertGrid( v float64 ) float64 {
    floored := float64( int( v + w.epsVert ) )
    if v != floored && v-floored < w.epsVert {
        return floored
    }
    return v
}

// Write implements BlockWriter: distributes one 8x8 source block's
// pixels across the destination according to the current scaling
// factors, flushing finalized destination pixels as their eastern and
// southern boundaries are reached.
func (w *DownscalingBlockWriter) Write( block *[64]int ) {
    blockWest := w.horizScale * float64( w.blockX )
    north := w.vertScale * float64( w.blockY )
    north = w.snapToVertGrid( north )

    srcIdx := 0
    colBuffIdx := 0

    blockWest = w.snapToHorizGrid( blockWest )
    floorBlockWest := int( blockWest )

    for row := 0; row < 8; row++ {
        west := blockWest
        floorNorth := int( north )
        vertOffset := int( w.dstW ) * floorNorth

        south := north + w.vertScale
        south = w.snapToVertGrid( south )
        floorSouth := int( south )

        srcRowSpansNextDstRow := floorSouth != floorNorth

        var northFraction float64
        if floorSouth == floorNorth || float64( floorSouth ) == south {
            northFraction = 1.0
        } else {
            northFraction = ( float64( floorSouth ) - north ) / w.vertScale
        }

        if float64( floorNorth ) == north || row == 0 {
            w.rowBuffer[floorBlockWest] += w.columnBuffer[colBuffIdx]
            w.columnBuffer[colBuffIdx] = 0
        }

        if northFraction != 1.0 {
            w.edgeBuffer = w.columnBuffer[colBuffIdx+1]
            w.columnBuffer[colBuffIdx+1] = 0
        }

        for col := 0; col < 8; col++ {
            east := west + w.horizScale
            floorWest := int( west )
            east = w.snapToHorizGrid( east )
            floorEast := int( east )

            val := float64( block[srcIdx] )
            srcIdx++

            var westFraction float64
            if floorEast == floorWest {
                westFraction = 1.0
            } else {
                westFraction = ( float64( floorEast ) - west ) / w.horizScale
            }

            westVal := westFraction * val
            eastVal := val - westVal

            northWestVal := northFraction * westVal
            southWestVal := westVal - northWestVal
            northEastVal := northFraction * eastVal
            southEastVal := eastVal - northEastVal

            w.rowBuffer[floorWest] += northWestVal
            w.edgeBuffer += southWestVal

            switch {
            case east == float64( floorEast ) && srcRowSpansNextDstRow:
                w.flush( vertOffset, floorWest )
                if col == 7 {
                    colBuffIdx++
                }

            case floorWest == floorEast:
                if col == 7 {
                    if srcRowSpansNextDstRow || row == 7 {
                        w.columnBuffer[colBuffIdx] = w.rowBuffer[floorWest]
                        colBuffIdx++
                        w.rowBuffer[floorWest] = w.edgeBuffer
                        w.edgeBuffer = 0
                    }
                    if northFraction != 1.0 && row == 7 {
                        w.columnBuffer[colBuffIdx] = w.rowBuffer[floorWest]
                        w.rowBuffer[floorWest] = 0
                    }
                }

            default:
                if srcRowSpansNextDstRow {
                    dstVal := int( math.Round( w.rowBuffer[floorWest] * w.normFactor ) )
                    w.dst[vertOffset+floorWest] = clampPixel( dstVal )
                    w.rowBuffer[floorWest] = w.edgeBuffer
                }
                if col == 7 {
                    w.edgeBuffer = 0
                    w.columnBuffer[colBuffIdx] += northEastVal
                    if srcRowSpansNextDstRow {
                        colBuffIdx++
                    }
                    w.columnBuffer[colBuffIdx] += southEastVal
                } else {
                    w.rowBuffer[floorEast] += northEastVal
                    w.edgeBuffer = southEastVal
                }
            }

            west = east
        }

        north = south
    }

    w.blockX += 8
    if w.blockX == w.srcWidthPx {
        w.blockX = 0
        w.blockY += 8
    }
}

func (w *DownscalingBlockWriter) flush( vertOffset, floorWest int ) {
    dstVal := int( math.Round( w.rowBuffer[floorWest] * w.normFactor ) )
    w.dst[vertOffset+floorWest] = clampPixel( dstVal )
    w.rowBuffer[floorWest] = w.edgeBuffer
    w.edgeBuffer = 0
}

func clampPixel( v int ) byte {
    if v < 0 {
        return 0
    }
    if v > 255 {
        return 255
    }
    return byte( v )
}
