package interop

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"
	kbitmap "github.com/kelindar/bitmap"
	"github.com/zeebo/errs"

	"github.com/hupe1980/bitpos"
	"github.com/hupe1980/bitpos/internal/conv"
)

// Error is the error class for conversion failures.
var Error = errs.Class("interop")

// ToRoaring64 drains ps into a new 64-bit Roaring bitmap.
func ToRoaring64(ps bitpos.PositionSource) *roaring64.Bitmap {
	rb := roaring64.New()
	for pos, ok := ps.Next(); ok; pos, ok = ps.Next() {
		rb.Add(pos)
	}
	return rb
}

// ToRoaring drains ps into a new 32-bit Roaring bitmap. It stops at the first
// position above math.MaxUint32 and returns an error; values added before it
// stay in the returned bitmap.
func ToRoaring(ps bitpos.PositionSource) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for pos, ok := ps.Next(); ok; pos, ok = ps.Next() {
		v, err := conv.Uint64ToUint32(pos)
		if err != nil {
			return rb, Error.Wrap(err)
		}
		rb.Add(v)
	}
	return rb, nil
}

// ToBitSet drains ps into a new bitset.
func ToBitSet(ps bitpos.PositionSource) (*bitset.BitSet, error) {
	bs := bitset.New(0)
	for pos, ok := ps.Next(); ok; pos, ok = ps.Next() {
		if pos > math.MaxUint {
			return bs, Error.New("position %d exceeds uint", pos)
		}
		bs.Set(uint(pos))
	}
	return bs, nil
}

// ToKelindar drains ps into a new kelindar bitmap.
func ToKelindar(ps bitpos.PositionSource) (kbitmap.Bitmap, error) {
	var bm kbitmap.Bitmap
	for pos, ok := ps.Next(); ok; pos, ok = ps.Next() {
		v, err := conv.Uint64ToUint32(pos)
		if err != nil {
			return bm, Error.Wrap(fmt.Errorf("kelindar bitmap: %w", err))
		}
		bm.Set(v)
	}
	return bm, nil
}
