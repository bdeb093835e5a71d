package jpegroi

import "testing"

func TestBoundingBoxWidthHeight( t *testing.T ) {
    b := NewBoundingBox( 2, 3, 10, 8 )
    if b.Width( ) != 8 {
        t.Fatalf( "Width() = %d, want 8", b.Width( ) )
    }
    if b.Height( ) != 5 {
        t.Fatalf( "Height() = %d, want 5", b.Height( ) )
    }
}

func TestBoundingBoxMerge( t *testing.T ) {
    a := NewBoundingBox( 2, 2, 4, 4 )
    b := NewBoundingBox( 1, 3, 6, 5 )
    a.Merge( b )
    want := NewBoundingBox( 1, 2, 6, 5 )
    if a != want {
        t.Fatalf( "Merge() = %+v, want %+v", a, want )
    }
}

func TestBoundingBoxExpandToSquareWidensShortAxis( t *testing.T ) {
    outer := NewBoundingBox( 0, 0, 100, 100 )
    b := NewBoundingBox( 10, 10, 14, 20 ) // 4 wide, 10 tall
    if !b.ExpandToSquare( outer ) {
        t.Fatalf( "ExpandToSquare() = false, want true" )
    }
    if b.Width( ) != b.Height( ) {
        t.Fatalf( "not square after expansion: %dx%d", b.Width( ), b.Height( ) )
    }
    if b.Width( ) != 10 {
        t.Fatalf( "Width() = %d, want 10", b.Width( ) )
    }
}

func TestBoundingBoxExpandToSquareClampsToOuter( t *testing.T ) {
    outer := NewBoundingBox( 0, 0, 12, 100 )
    b := NewBoundingBox( 0, 10, 4, 20 ) // 4 wide, 10 tall, near left edge
    if !b.ExpandToSquare( outer ) {
        t.Fatalf( "ExpandToSquare() = false, want true" )
    }
    if b.TopLeftX < outer.TopLeftX || b.BottomRightX > outer.BottomRightX {
        t.Fatalf( "expansion escaped outer bounds: %+v", b )
    }
}

func TestBoundingBoxExpandToSquareFailsWhenTooLarge( t *testing.T ) {
    outer := NewBoundingBox( 0, 0, 5, 100 )
    b := NewBoundingBox( 0, 0, 4, 20 ) // would need width 20, outer is only 5 wide
    before := b
    if b.ExpandToSquare( outer ) {
        t.Fatalf( "ExpandToSquare() = true, want false" )
    }
    if b != before {
        t.Fatalf( "b was mutated despite failure: %+v", b )
    }
}
