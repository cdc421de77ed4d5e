package main

import (
	"fmt"
	"reflect"

	"github.com/kpfaulkner/geom2d/geom"
	log "github.com/sirupsen/logrus"
)

type fieldLayout struct {
	Name   string
	Offset uintptr
	Size   uintptr
	Align  int
}

// layout returns the size of input's type and, for structs, each field's placement.
func layout(input any) (uintptr, []fieldLayout) {
	rType := reflect.TypeOf(input)
	var fields []fieldLayout
	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			f := rType.Field(i)
			fields = append(fields, fieldLayout{
				Name:   f.Name,
				Offset: f.Offset,
				Size:   f.Type.Size(),
				Align:  f.Type.Align(),
			})
		}
	}
	return rType.Size(), fields
}

// padding is the number of bytes in the type not covered by any field.
func padding(size uintptr, fields []fieldLayout) uintptr {
	if len(fields) == 0 {
		return 0
	}
	var used uintptr
	for _, f := range fields {
		used += f.Size
	}
	return size - used
}

// displays sizes of the value types to spot any padding wasteage
func memStats(input any) {
	size, fields := layout(input)
	fmt.Printf("Size of %s : %d bytes\n", reflect.TypeOf(input).Name(), size)
	for _, f := range fields {
		fmt.Printf("  Name %s\n", f.Name)
		fmt.Printf("    Offset of    : %d bytes\n", f.Offset)
		fmt.Printf("    Size of      : %d bytes\n", f.Size)
		fmt.Printf("    Alignment of : %d bytes\n", f.Align)
		fmt.Println()
	}
	if pad := padding(size, fields); pad > 0 {
		log.Warnf("%s carries %d bytes of padding", reflect.TypeOf(input).Name(), pad)
	}
}

func main() {
	memStats(geom.Point{})
	memStats(geom.Size{})
	memStats(geom.Pair{})
	memStats(geom.Vec2d{})
}
