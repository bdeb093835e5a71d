package jpegroi

// Dequantizer holds a non-owning view of the 8-bit luma quantization
// table (64 bytes, in zig-zag scan order as stored in the DQT segment)
// and multiplies coefficients in place.
type Dequantizer struct {
    table []byte // len 64 when set, nil otherwise
}

// IsSet reports whether the luma quantization table has been bound.
func (q *Dequantizer) IsSet( ) bool {
    return q.table != nil
}

// Transform multiplies every coefficient of block by the corresponding
// quantization table entry.
func (q *Dequantizer) Transform( block *[64]int ) {
    for i := 0; i < 64; i++ {
        block[i] *= int( q.table[i] )
    }
}

// TransformDC multiplies only the DC coefficient, used by DC-only decode.
func (q *Dequantizer) TransformDC( dc *int ) {
    *dc *= int( q.table[0] )
}
