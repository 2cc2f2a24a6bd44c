// Package encoding provides the primitive codec of the UFS binary container.
//
// The container is built from four primitives, all big-endian on the wire:
//
//	[u32 len][bytes]   length-prefixed byte string, never null-terminated or padded
//	[u32]              unsigned 32-bit integer (lengths, counts, reserved tags)
//	[f64]              IEEE-754 double precision value
//	[f64 x N]          consecutive doubles, N carried by a preceding count field
//
// # Writing
//
// Writer appends primitives into a pooled buffer:
//
//	w := encoding.NewWriter(endian.GetUFSEngine())
//	defer w.Finish()
//
//	if err := w.WriteString("Version2"); err != nil {
//	    return err
//	}
//	w.WriteU32(2)
//	w.WriteF64Array([]float64{400, 401})
//	data := w.Detach()
//
// # Reading
//
// Reads are pure functions of (buffer, cursor) returning (value, cursor'):
//
//	r := encoding.NewReader(endian.GetUFSEngine())
//	version, cursor, err := r.ReadBytes(data, 0)
//	count, cursor, err := r.ReadU32(data, cursor)
//	values, cursor, err := r.ReadF64Array(data, cursor, int(count))
//
// A read that needs more bytes than remain fails with errs.ErrTruncatedInput.
// When the shortfall comes from a declared length or count, the error also
// matches errs.ErrMalformedDocument. Nothing is allocated for a declared
// length before it has been checked against the buffer.
//
// # Thread Safety
//
// Writer is not thread-safe. Reader is an immutable value and safe for
// concurrent use.
package encoding
