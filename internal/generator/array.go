package generator

import (
	"fmt"

	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

type arrayEmitter struct{}

func (arrayEmitter) GoType(ctx *context, ft schema.FieldType) string {
	elem, err := emitterFor(ft.ArrayElem.Kind)
	if err != nil {
		return fmt.Sprintf("/* %s */ any", err)
	}
	return fmt.Sprintf("[%d]%s", ft.ArrayLen, elem.GoType(ctx, *ft.ArrayElem))
}

func (a arrayEmitter) Read(s *writer.Sink, ctx *context, dst string, ft schema.FieldType) {
	elemType := (&arrayEmitter{}).elemGoType(ctx, ft)
	s.WriteLine("var %s [%d]%s", dst, ft.ArrayLen, elemType)
	s.WriteLine("for i := 0; i < %d; i++ {", ft.ArrayLen)
	s.Body(func() {
		elem, err := emitterFor(ft.ArrayElem.Kind)
		if err != nil {
			s.WriteLine("// %s", err)
			return
		}
		elem.Read(s, ctx, "elem", *ft.ArrayElem)
		s.WriteLine("%s[i] = elem", dst)
	})
	s.WriteLine("}")
}

func (a arrayEmitter) Write(s *writer.Sink, ctx *context, src string, ft schema.FieldType) {
	s.WriteLine("for i := 0; i < %d; i++ {", ft.ArrayLen)
	s.Body(func() {
		elem, err := emitterFor(ft.ArrayElem.Kind)
		if err != nil {
			s.WriteLine("// %s", err)
			return
		}
		elem.Write(s, ctx, fmt.Sprintf("%s[i]", src), *ft.ArrayElem)
	})
	s.WriteLine("}")
}

func (arrayEmitter) elemGoType(ctx *context, ft schema.FieldType) string {
	elem, err := emitterFor(ft.ArrayElem.Kind)
	if err != nil {
		return "any"
	}
	return elem.GoType(ctx, *ft.ArrayElem)
}

func init() {
	registerEmitter(schema.KindArray, arrayEmitter{})
}
