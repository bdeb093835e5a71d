package jpegroi

import "math"

// BoundingBox is an integer rectangle in 8x8 block coordinates, with
// bottom-right strictly greater than top-left when non-empty.
type BoundingBox struct {
    TopLeftX, TopLeftY         uint16
    BottomRightX, BottomRightY uint16
}

// NewBoundingBox constructs a BoundingBox from its four corners.
func NewBoundingBox( x1, y1, x2, y2 uint16 ) BoundingBox {
    return BoundingBox{ TopLeftX: x1, TopLeftY: y1, BottomRightX: x2, BottomRightY: y2 }
}

// Width returns the box width.
func (b BoundingBox) Width( ) uint16 {
    return b.BottomRightX - b.TopLeftX
}

// Height returns the box height.
func (b BoundingBox) Height( ) uint16 {
    return b.BottomRightY - b.TopLeftY
}

// NonZero reports whether the box has non-zero area.
func (b BoundingBox) NonZero( ) bool {
    return b.BottomRightX > b.TopLeftX && b.BottomRightY > b.TopLeftY
}

// GreaterThan orders two boxes by the shorter of their two sides.
func (b BoundingBox) GreaterThan( other BoundingBox ) bool {
    return minU16( b.Width( ), b.Height( ) ) > minU16( other.Width( ), other.Height( ) )
}

// Merge expands b to also cover other, axis-wise.
func (b *BoundingBox) Merge( other BoundingBox ) {
    b.TopLeftX = minU16( b.TopLeftX, other.TopLeftX )
    b.TopLeftY = minU16( b.TopLeftY, other.TopLeftY )
    b.BottomRightX = maxU16( b.BottomRightX, other.BottomRightX )
    b.BottomRightY = maxU16( b.BottomRightY, other.BottomRightY )
}

// ExpandToSquare centers b's shorter axis outward until it becomes a
// square, clamped within outer. It fails (returns false, leaving b
// unchanged) when the required square would exceed outer's shorter side.
func (b *BoundingBox) ExpandToSquare( outer BoundingBox ) bool {
    if maxU16( b.Width( ), b.Height( ) ) > minU16( outer.Width( ), outer.Height( ) ) {
        return false
    }

    if b.Width( ) < b.Height( ) {
        target := b.Height( )
        shift := int( math.Round( float64( target-b.Width( ) ) / 2.0 ) )
        left := int( b.TopLeftX ) - shift
        if left < int( outer.TopLeftX ) {
            left = int( outer.TopLeftX )
        }
        right := left + int( target )
        if right > int( outer.BottomRightX ) {
            right = int( outer.BottomRightX )
            left = right - int( target )
        }
        b.TopLeftX = uint16( left )
        b.BottomRightX = uint16( right )
    } else if b.Height( ) < b.Width( ) {
        target := b.Width( )
        shift := int( math.Round( float64( target-b.Height( ) ) / 2.0 ) )
        top := int( b.TopLeftY ) - shift
        if top < int( outer.TopLeftY ) {
            top = int( outer.TopLeftY )
        }
        bottom := top + int( target )
        if bottom > int( outer.BottomRightY ) {
            bottom = int( outer.BottomRightY )
            top = bottom - int( target )
        }
        b.TopLeftY = uint16( top )
        b.BottomRightY = uint16( bottom )
    }

    return true
}

func minU16( a, b uint16 ) uint16 {
    if a < b {
        return a
    }
    return b
}

func maxU16( a, b uint16 ) uint16 {
    if a > b {
        return a
    }
    return b
}
