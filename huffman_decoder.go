package jpegroi

import "fmt"

const (
    huffClassLuma   = 0
    huffClassChroma = 1
)

// huffmanDecoder walks the entropy-coded segment through a BitReader,
// tracking the DC predictor and block-position state needed to decode
// individual blocks and to seek to an arbitrary luma block within the
// interleaved MCU structure.
type huffmanDecoder struct {
    tables         *huffmanTables
    blockIdx       int
    lumaBlockIdx   int
    previousLumaDC int
}

func newHuffmanDecoder( tables *huffmanTables ) huffmanDecoder {
    return huffmanDecoder{ tables: tables }
}

// readCoefficient reads length raw bits and recovers the signed DCT
// coefficient. The length-guarded form is used deliberately (see
// DESIGN.md / spec note on the two variants found in the source).
func readCoefficient( br *BitReader, length int ) ( int, error ) {
    if length == 0 {
        return 0, nil
    }
    v := 0
    for i := 0; i < length; i++ {
        bit, err := br.ReadBit( )
        if err != nil {
            return 0, err
        }
        v = v<<1 | bit
    }
    if length > 0 && v>>uint( length-1 ) == 0 {
        return v - ( 1<<uint( length ) ) + 1, nil
    }
    return v, nil
}

// decodeNextBlock decodes one full 8x8 coefficient block (DC + AC, in
// zig-zag scan order) using the DC/AC tables at classID.
func (d *huffmanDecoder) decodeNextBlock( br *BitReader, block *[64]int, classID int ) error {
    dcSymbol, err := d.tables.dc[classID].decodeSymbol( br )
    if err != nil {
        return err
    }
    if dcSymbol > 11 {
        return fmt.Errorf( "decodeNextBlock: DC symbol %d out of range: %w", dcSymbol, ErrCorruptedData )
    }
    dc, err := readCoefficient( br, int( dcSymbol ) )
    if err != nil {
        return err
    }
    block[0] = dc

    idx := 1
    for idx < 64 {
        acSymbol, err := d.tables.ac[classID].decodeSymbol( br )
        if err != nil {
            return err
        }

        if acSymbol == 0x00 {
            for idx < 64 {
                block[idx] = 0
                idx++
            }
            break
        }

        if acSymbol == 0xf0 {
            if idx+16 >= 64 {
                return fmt.Errorf( "decodeNextBlock: zero run overflows block: %w", ErrCorruptedData )
            }
            for i := 0; i < 16; i++ {
                block[idx] = 0
                idx++
            }
            continue
        }

        run := int( acSymbol >> 4 )
        length := int( acSymbol & 0xf )
        if idx+run >= 64 {
            return fmt.Errorf( "decodeNextBlock: AC run overflows block: %w", ErrCorruptedData )
        }
        if length > 10 {
            return fmt.Errorf( "decodeNextBlock: AC coefficient length %d out of range: %w", length, ErrCorruptedData )
        }
        for i := 0; i < run; i++ {
            block[idx] = 0
            idx++
        }
        coeff, err := readCoefficient( br, length )
        if err != nil {
            return err
        }
        block[idx] = coeff
        idx++
    }

    for idx < 64 {
        block[idx] = 0
        idx++
    }

    return nil
}

// decodeLumaBlock decodes whichever blocks are necessary (luma and
// interleaved chroma, discarding the latter) so that the decoder state
// ends having just produced the luma block at targetLumaBlockIdx within
// the full frame's raster of luma blocks. H is the horizontal chroma
// subsampling factor (1 for 4:4:4, 2 for 4:2:2): within each interleaved
// MCU group, subblock positions [0,H) are luma and [H,H+2) are chroma.
func (d *huffmanDecoder) decodeLumaBlock( br *BitReader, block *[64]int, targetLumaBlockIdx int, H int ) error {
    if d.lumaBlockIdx > targetLumaBlockIdx {
        d.blockIdx = 0
        d.lumaBlockIdx = 0
        d.previousLumaDC = 0
        br.RestartECS( )
    }

    for d.lumaBlockIdx <= targetLumaBlockIdx {
        if d.blockIdx%( H+2 ) < H {
            if err := d.decodeNextBlock( br, block, huffClassLuma ); err != nil {
                return err
            }
            block[0] += d.previousLumaDC
            d.previousLumaDC = block[0]
            d.lumaBlockIdx++
        } else {
            var chromaBlock [64]int
            if err := d.decodeNextBlock( br, &chromaBlock, huffClassChroma ); err != nil {
                return err
            }
        }
        d.blockIdx++
    }

    return nil
}
