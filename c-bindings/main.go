// C bindings for the qtty conversion engine. Build as a shared library with:
//   go build -buildmode=c-shared -o libqtty.so ./c-bindings
//
// Every entry point validates its unit identifiers against the registry
// before doing any work and reports failures through negative status codes.
// Out-parameters are only written on QTTY_OK; a NULL out-pointer yields
// QTTY_ERR_NULL_OUT. All functions are safe to call from parallel threads:
// the registry is immutable and no call retains caller memory.
package main

/*
#include <stdlib.h>
#include "qtty.h"
*/
import "C"

import (
	"encoding/json"
	"errors"
	"unsafe"

	"github.com/siderust/qtty/qtty"
	"github.com/siderust/qtty/units"
)

// interfaceVersion is bumped whenever the exported surface changes in a way
// callers can detect through qtty_version.
const interfaceVersion = 1

// Status codes. Frozen; new codes may be added but these never change.
const (
	statusOK              = C.int32_t(0)
	statusUnknownUnit     = C.int32_t(-1)
	statusIncompatibleDim = C.int32_t(-2)
	statusNullOut         = C.int32_t(-3)
	statusInvalidValue    = C.int32_t(-4)
)

// statusFor translates engine errors into boundary status codes.
func statusFor(err error) C.int32_t {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, qtty.ErrUnknownUnit):
		return statusUnknownUnit
	case errors.Is(err, qtty.ErrIncompatibleDimension):
		return statusIncompatibleDim
	default:
		return statusInvalidValue
	}
}

// unitNames holds one C string per registered unit, allocated once at
// startup and never freed, so returned pointers stay valid for the life
// of the process and callers must not free them.
var unitNames = make(map[units.Unit]*C.char)

func init() {
	for _, u := range units.All() {
		unitNames[u] = C.CString(units.Name(u))
	}
}

//export qtty_version
func qtty_version() C.int32_t {
	return interfaceVersion
}

//export qtty_unit_is_valid
func qtty_unit_is_valid(unit C.uint32_t) C.bool {
	return C.bool(units.IsValid(units.Unit(unit)))
}

//export qtty_unit_dimension
func qtty_unit_dimension(unit C.uint32_t, outDimension *C.uint32_t) C.int32_t {
	if outDimension == nil {
		return statusNullOut
	}
	dim, err := units.DimensionOf(units.Unit(unit))
	if err != nil {
		return statusFor(err)
	}
	*outDimension = C.uint32_t(dim)
	return statusOK
}

//export qtty_units_compatible
func qtty_units_compatible(a, b C.uint32_t, outCompatible *C.bool) C.int32_t {
	if outCompatible == nil {
		return statusNullOut
	}
	compatible, err := qtty.Compatible(units.Unit(a), units.Unit(b))
	if err != nil {
		return statusFor(err)
	}
	*outCompatible = C.bool(compatible)
	return statusOK
}

//export qtty_unit_name
func qtty_unit_name(unit C.uint32_t) *C.char {
	return unitNames[units.Unit(unit)]
}

//export qtty_quantity_make
func qtty_quantity_make(value C.double, unit C.uint32_t, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return statusNullOut
	}
	q, err := qtty.New(float64(value), units.Unit(unit))
	if err != nil {
		return statusFor(err)
	}
	writeQuantity(out, q)
	return statusOK
}

//export qtty_quantity_convert
func qtty_quantity_convert(src C.qtty_quantity_t, dstUnit C.uint32_t, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return statusNullOut
	}
	converted, err := readQuantity(src).Convert(units.Unit(dstUnit))
	if err != nil {
		return statusFor(err)
	}
	writeQuantity(out, converted)
	return statusOK
}

//export qtty_quantity_convert_value
func qtty_quantity_convert_value(value C.double, srcUnit, dstUnit C.uint32_t, outValue *C.double) C.int32_t {
	if outValue == nil {
		return statusNullOut
	}
	converted, err := qtty.ConvertValue(float64(value), units.Unit(srcUnit), units.Unit(dstUnit))
	if err != nil {
		return statusFor(err)
	}
	*outValue = C.double(converted)
	return statusOK
}

//export qtty_quantity_to_json
func qtty_quantity_to_json(src C.qtty_quantity_t, outJSON **C.char) C.int32_t {
	if outJSON == nil {
		return statusNullOut
	}
	data, err := json.Marshal(readQuantity(src))
	if err != nil {
		return statusFor(err)
	}
	*outJSON = C.CString(string(data))
	return statusOK
}

//export qtty_quantity_from_json
func qtty_quantity_from_json(jsonStr *C.char, out *C.qtty_quantity_t) C.int32_t {
	if out == nil {
		return statusNullOut
	}
	if jsonStr == nil {
		return statusInvalidValue
	}
	var q qtty.Quantity
	if err := json.Unmarshal([]byte(C.GoString(jsonStr)), &q); err != nil {
		return statusFor(err)
	}
	writeQuantity(out, q)
	return statusOK
}

// qtty_string_free releases a string allocated by qtty_quantity_to_json.
// Strings returned by qtty_unit_name must not be passed here.
//
//export qtty_string_free
func qtty_string_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func readQuantity(src C.qtty_quantity_t) qtty.Quantity {
	return qtty.Quantity{Value: float64(src.value), Unit: units.Unit(src.unit)}
}

func writeQuantity(out *C.qtty_quantity_t, q qtty.Quantity) {
	out.value = C.double(q.Value)
	out.unit = C.uint32_t(q.Unit)
}

func main() {}
