// Package interop connects bitpos iterators to the bitmap libraries commonly
// found next to it.
//
// Sources turn a compressed or dense bitmap into a word stream that
// BitmapIter and BatchedIter can consume:
//
//	rb := roaring.BitmapOf(3, 700, 70000)
//	it := bitpos.NewBatchedIter(interop.FromRoaring(rb))
//
// Collectors go the other way and drain a PositionSource into a bitmap.
package interop
