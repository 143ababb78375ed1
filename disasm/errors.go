package disasm

import "fmt"

// DecodeError reports a dispatch-time failure: either the slice underran
// while the dispatcher was reading a prefix byte, or a fully-read prefix
// landed on an Unknown slot. Prefix carries the accumulated bytes read so
// far, letting a caller localize the failure within the cell tree (§7).
type DecodeError struct {
	Prefix []byte
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("disasm: decode failed at prefix % 02x: %v", e.Prefix, e.Cause)
	}
	return fmt.Sprintf("disasm: unknown opcode at prefix % 02x", e.Prefix)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
