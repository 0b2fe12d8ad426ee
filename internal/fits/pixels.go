package fits

import (
	"encoding/binary"
	"fmt"
	"math"
)

// decodePixels converts raw big-endian FITS data into float64 pixel values,
// applying the linear BZERO/BSCALE transform. Only the first npix values are
// decoded, which lets callers slice a leading plane out of a cube without
// materializing the rest.
func decodePixels(raw []byte, bitpix, npix int, bzero, bscale float64) ([]float64, error) {
	size := bytesPerPixel(bitpix)
	if size == 0 {
		return nil, fmt.Errorf("unsupported BITPIX %d", bitpix)
	}
	if len(raw) < npix*size {
		return nil, fmt.Errorf("truncated data: have %d bytes, need %d", len(raw), npix*size)
	}

	out := make([]float64, npix)
	for i := 0; i < npix; i++ {
		b := raw[i*size : (i+1)*size]
		var v float64
		switch bitpix {
		case 8:
			v = float64(b[0])
		case 16:
			v = float64(int16(binary.BigEndian.Uint16(b)))
		case 32:
			v = float64(int32(binary.BigEndian.Uint32(b)))
		case 64:
			v = float64(int64(binary.BigEndian.Uint64(b)))
		case -32:
			v = float64(math.Float32frombits(binary.BigEndian.Uint32(b)))
		case -64:
			v = math.Float64frombits(binary.BigEndian.Uint64(b))
		}
		out[i] = bzero + bscale*v
	}
	return out, nil
}

// bytesPerPixel maps BITPIX to element width; 0 for unknown values.
func bytesPerPixel(bitpix int) int {
	switch bitpix {
	case 8:
		return 1
	case 16:
		return 2
	case 32, -32:
		return 4
	case 64, -64:
		return 8
	default:
		return 0
	}
}
