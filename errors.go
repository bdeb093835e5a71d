package jpegroi

import (
    "errors"
    "fmt"
)

// Sentinel error kinds, one per taxonomy entry, matched with errors.Is.
var (
    ErrPrematureEndOfBuffer = errors.New( "premature end of buffer" )
    ErrUnsupportedMarker    = errors.New( "unsupported or unrecognized marker" )
    ErrUnsupportedParameter = errors.New( "unsupported parameter" )
    ErrCorruptedData        = errors.New( "corrupted data" )
    ErrECSRead              = errors.New( "ecs read error" )
    ErrROI                  = errors.New( "invalid region of interest" )
)

// wrapErr prefixes err with the caller's function name, in the style of
// jpgForwardError in the teacher this module was derived from.
func wrapErr( prefix string, err error ) error {
    return fmt.Errorf( prefix + ": %w", err )
}
