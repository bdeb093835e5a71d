package jpegroi

// stateID identifies a node of the header-parsing state machine. Marker
// states reuse the JPEG marker's own numeric code; custom states use
// small values below stateEntry so that isFinalState can distinguish
// "done" states from "still parsing" ones with a single comparison,
// mirroring the teacher's own _INIT/_APPLICATION/_FRAME-style constants.
type stateID uint16

const (
    stateHeaderOK stateID = iota
    stateErrorPEOB
    stateErrorUUM
    stateErrorUPAR
    stateErrorCorr

    stateEntry stateID = 100
)

const (
    markerSOI   stateID = 0xffd8
    markerEOI   stateID = 0xffd9
    markerAPP0  stateID = 0xffe0
    markerAPP15 stateID = 0xffef
    markerDQT   stateID = 0xffdb
    markerDHT   stateID = 0xffc4
    markerSOF0  stateID = 0xffc0
    markerSOS   stateID = 0xffda
)

func isFinalState( s stateID ) bool {
    return s < stateEntry
}

func ( s stateID ) String( ) string {
    switch s {
    case stateHeaderOK:
        return "HEADER_OK"
    case stateErrorPEOB:
        return "ERROR_PEOB"
    case stateErrorUUM:
        return "ERROR_UUM"
    case stateErrorUPAR:
        return "ERROR_UPAR"
    case stateErrorCorr:
        return "ERROR_CORR"
    case stateEntry:
        return "ENTRY"
    case markerSOI:
        return "SOI"
    case markerAPP0:
        return "APP0"
    case markerDQT:
        return "DQT"
    case markerDHT:
        return "DHT"
    case markerSOF0:
        return "SOF0"
    case markerSOS:
        return "SOS"
    default:
        return "UNKNOWN"
    }
}

// errorForState maps a final error state to its sentinel error.
func errorForState( s stateID ) error {
    switch s {
    case stateErrorPEOB:
        return ErrPrematureEndOfBuffer
    case stateErrorUUM:
        return ErrUnsupportedMarker
    case stateErrorUPAR:
        return ErrUnsupportedParameter
    case stateErrorCorr:
        return ErrCorruptedData
    }
    return ErrUnsupportedMarker
}
