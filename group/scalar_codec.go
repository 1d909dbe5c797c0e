package group

import (
	"io"
	"math/big"

	"github.com/sigma-relation/nizk/sigmaerr"
)

// randomScalar samples a uniform scalar in [0, n) from rng by rejection
// sampling over the smallest byte width covering n, shared by every
// ScalarField implementation in this package.
func randomScalar(rng io.Reader, n *big.Int) (Scalar, error) {
	byteLen := (n.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Scalar{}, sigmaerr.New(sigmaerr.RangeError, "failed to read randomness: "+err.Error())
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(n) < 0 {
			return Scalar{v: v, n: n}, nil
		}
	}
}

// serializeScalarsLE encodes scalars as fixed-width little-endian octet
// strings, concatenated in order, per spec.md section 3.
func serializeScalarsLE(scalars []Scalar, byteLen int) []byte {
	out := make([]byte, len(scalars)*byteLen)
	for i, s := range scalars {
		be := make([]byte, byteLen)
		s.v.FillBytes(be)
		// FillBytes writes big-endian; reverse into the little-endian
		// output slot.
		dst := out[i*byteLen : (i+1)*byteLen]
		for j := 0; j < byteLen; j++ {
			dst[j] = be[byteLen-1-j]
		}
	}
	return out
}

// deserializeScalarsLE is the inverse of serializeScalarsLE.
func deserializeScalarsLE(data []byte, byteLen int, n *big.Int) ([]Scalar, error) {
	if len(data)%byteLen != 0 {
		return nil, sigmaerr.New(sigmaerr.MalformedInput, "scalar data length is not a multiple of the scalar byte length")
	}
	scalars := make([]Scalar, 0, len(data)/byteLen)
	for i := 0; i < len(data); i += byteLen {
		chunk := data[i : i+byteLen]
		be := make([]byte, byteLen)
		for j := 0; j < byteLen; j++ {
			be[j] = chunk[byteLen-1-j]
		}
		v := new(big.Int).SetBytes(be)
		if v.Cmp(n) >= 0 {
			return nil, sigmaerr.New(sigmaerr.RangeError, "scalar value is out of field range")
		}
		scalars = append(scalars, Scalar{v: v, n: n})
	}
	return scalars, nil
}
