package asm

import (
	"fmt"

	"github.com/tonlabs/tvmtool/cell"
)

// objectType records what a .globl symbol turned out to be once its `.type`
// directive (if any) was seen: a callable function body, a data object
// backed by .byte/.short/.long/.quad values, or — until a .type directive
// arrives — nothing yet (§3 "Object").
type objectType int

const (
	objectNone objectType = iota
	objectFunction
	objectData
)

func objectTypeFromName(name string) objectType {
	switch name {
	case "function":
		return objectFunction
	case "object":
		return objectData
	default:
		return objectNone
	}
}

// dataValue is one assembled .byte/.short/.long/.quad literal: a signed
// integer plus the byte width it must be serialized at (§3 "DataValue").
type dataValue struct {
	value int64
	width int
}

func (d dataValue) serialize(b *cell.Builder) error {
	return b.AppendInt(d.value, d.width)
}

// object is a single .globl symbol: a function (id, body) or a data object
// (declared size plus the sequence of values written into it), tracked
// exactly as parser.rs's Object/ObjectType pair does.
type object struct {
	name  string
	size  int
	dtype objectType

	funcID   uint32
	funcBody string

	data []dataValue
}

func newObject(name string) *object {
	return &object{name: name}
}

func (o *object) setType(typeName string) {
	o.dtype = objectTypeFromName(typeName)
}

func dataWidthOf(directive string) (int, error) {
	switch directive {
	case "byte":
		return 1, nil
	case "short":
		return 2, nil
	case "long":
		return 4, nil
	case "quad":
		return 8, nil
	default:
		return 0, fmt.Errorf("asm: unsupported data parameter .%s", directive)
	}
}
