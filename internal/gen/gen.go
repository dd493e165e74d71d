// Package gen generates binding source from a YAML description of a
// native API surface.
//
// The description lists handle types, enums, bit-flag sets, and
// functions with their failure sentinels. The generator derives Go
// names from the native ones, emits the error-check trampoline call
// matching each sentinel, and gofmts the result.
package gen

import (
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// API is the root of a binding description file.
type API struct {
	// Package is the Go package name to generate.
	Package string `yaml:"package"`
	// Include is the native header, e.g. "<SDL3/SDL.h>".
	Include string `yaml:"include"`
	// TrimPrefix is stripped from native names before deriving Go
	// names, e.g. "SDL_".
	TrimPrefix string     `yaml:"trim_prefix"`
	Handles    []Handle   `yaml:"handles"`
	Enums      []Enum     `yaml:"enums"`
	Functions  []Function `yaml:"functions"`
}

// Handle declares an opaque native pointer type to wrap.
type Handle struct {
	Native string `yaml:"native"`
	// Name overrides the derived Go name.
	Name string `yaml:"name"`
}

// Enum declares a native enum or bit-flag set.
type Enum struct {
	Native string `yaml:"native"`
	Name   string `yaml:"name"`
	// Type is the underlying Go type; defaults to uint32.
	Type string `yaml:"type"`
	// Flags marks a bitmask whose String joins set bit names.
	Flags  bool        `yaml:"flags"`
	Values []EnumValue `yaml:"values"`
}

// EnumValue is one constant of an enum.
type EnumValue struct {
	Native string `yaml:"native"`
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
}

// Function declares one native call to wrap.
type Function struct {
	Native string `yaml:"native"`
	Name   string `yaml:"name"`
	Doc    string `yaml:"doc"`
	// Recv is the Go handle type the wrapper hangs off, empty for a
	// package-level function.
	Recv string  `yaml:"recv"`
	Args []Param `yaml:"args"`
	// Ret is the Go return type, empty for none. Handle names return
	// wrapped pointers.
	Ret string `yaml:"ret"`
	// Sentinel selects the failure check: bool, null, negative, zero,
	// or empty for infallible calls.
	Sentinel string `yaml:"sentinel"`
}

// Param is one function argument.
type Param struct {
	Name string `yaml:"name"`
	// Type is the Go-facing type: a scalar, string, or a handle name.
	Type string `yaml:"type"`
}

// Load reads and validates a description file.
func Load(path string) (*API, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	var api API
	if err := yaml.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("gen: parse %s: %w", path, err)
	}
	if err := api.validate(); err != nil {
		return nil, fmt.Errorf("gen: %s: %w", path, err)
	}
	return &api, nil
}

func (a *API) validate() error {
	if a.Package == "" {
		return fmt.Errorf("missing package name")
	}
	if a.Include == "" {
		return fmt.Errorf("missing include")
	}
	handles := map[string]bool{}
	for _, h := range a.Handles {
		if h.Native == "" {
			return fmt.Errorf("handle without native name")
		}
		handles[a.goName(h.Name, h.Native)] = true
	}
	for _, e := range a.Enums {
		if e.Native == "" {
			return fmt.Errorf("enum without native name")
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %s has no values", e.Native)
		}
		if e.Type != "" && scalarTypes[e.Type] == "" {
			return fmt.Errorf("enum %s: unsupported type %q", e.Native, e.Type)
		}
	}
	for _, f := range a.Functions {
		if f.Native == "" {
			return fmt.Errorf("function without native name")
		}
		switch f.Sentinel {
		case "", "bool", "null", "negative", "zero":
		default:
			return fmt.Errorf("function %s: unknown sentinel %q", f.Native, f.Sentinel)
		}
		if f.Sentinel == "null" && !handles[f.Ret] {
			return fmt.Errorf("function %s: null sentinel needs a handle return", f.Native)
		}
		if (f.Sentinel == "negative" || f.Sentinel == "zero") && f.Ret == "" {
			return fmt.Errorf("function %s: %s sentinel needs a return type", f.Native, f.Sentinel)
		}
		if f.Recv != "" && !handles[f.Recv] {
			return fmt.Errorf("function %s: unknown receiver %s", f.Native, f.Recv)
		}
	}
	return nil
}

// goName derives a Go identifier from a native one unless an explicit
// override is set.
func (a *API) goName(override, native string) string {
	if override != "" {
		return override
	}
	return strcase.ToCamel(strings.TrimPrefix(native, a.TrimPrefix))
}

// Generate renders the binding source for the description and gofmts
// it.
func (a *API) Generate() ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by bindgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", a.Package)
	fmt.Fprintf(&b, "/*\n#cgo pkg-config: sdl3\n#include <stdlib.h>\n#include %s\n*/\nimport \"C\"\n\n", a.Include)
	b.WriteString(a.imports())

	for _, h := range a.Handles {
		a.emitHandle(&b, h)
	}
	for _, e := range a.Enums {
		a.emitEnum(&b, e)
	}
	for _, f := range a.Functions {
		if err := a.emitFunction(&b, f); err != nil {
			return nil, err
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return src, nil
}

func (a *API) imports() string {
	need := map[string]bool{}
	for _, f := range a.Functions {
		if f.Sentinel != "" {
			need["github.com/gosdl/sdl3/internal/fail"] = true
		}
		for _, p := range f.Args {
			if p.Type == "string" {
				need["unsafe"] = true
			}
		}
	}
	for _, e := range a.Enums {
		if e.Flags {
			need["strings"] = true
		} else {
			need["strconv"] = true
		}
	}
	var std, rest []string
	for imp := range need {
		if strings.Contains(imp, ".") {
			rest = append(rest, imp)
		} else {
			std = append(std, imp)
		}
	}
	if len(std)+len(rest) == 0 {
		return ""
	}
	sort.Strings(std)
	sort.Strings(rest)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, imp := range std {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}
	if len(std) > 0 && len(rest) > 0 {
		b.WriteString("\n")
	}
	for _, imp := range rest {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}
	b.WriteString(")\n\n")
	return b.String()
}

func (a *API) emitHandle(b *strings.Builder, h Handle) {
	name := a.goName(h.Name, h.Native)
	fmt.Fprintf(b, "// %s wraps one %s handle.\n", name, h.Native)
	fmt.Fprintf(b, "type %s struct {\n\tptr *C.%s\n}\n\n", name, h.Native)
	fmt.Fprintf(b, "func (h *%s) valid() bool { return h != nil && h.ptr != nil }\n\n", name)
}

func (a *API) emitEnum(b *strings.Builder, e Enum) {
	name := a.goName(e.Name, e.Native)
	typ := e.Type
	if typ == "" {
		typ = "uint32"
	}
	fmt.Fprintf(b, "// %s mirrors %s.\n", name, e.Native)
	fmt.Fprintf(b, "type %s %s\n\n", name, typ)
	b.WriteString("const (\n")
	for _, v := range e.Values {
		fmt.Fprintf(b, "\t%s %s = %s\n", a.goName(v.Name, v.Native), name, v.Value)
	}
	b.WriteString(")\n\n")

	recv := strings.ToLower(name[:1])
	fmt.Fprintf(b, "// Native returns the value %s passes over the native boundary.\n", name)
	fmt.Fprintf(b, "func (%s %s) Native() %s { return %s(%s) }\n\n", recv, name, typ, typ, recv)

	if e.Flags {
		a.emitFlagString(b, e, name, recv)
	} else {
		a.emitEnumString(b, e, name, recv)
		fmt.Fprintf(b, "// %sFromNative converts a native value, reporting whether it names\n// a known %s.\n", name, name)
		fmt.Fprintf(b, "func %sFromNative(v %s) (%s, bool) {\n", name, typ, name)
		fmt.Fprintf(b, "\tn := %s(v)\n\t_, ok := %sNames[n]\n\treturn n, ok\n}\n\n", name, strcase.ToLowerCamel(name))
	}
}

func (a *API) emitEnumString(b *strings.Builder, e Enum, name, recv string) {
	varName := strcase.ToLowerCamel(name) + "Names"
	fmt.Fprintf(b, "var %s = map[%s]string{\n", varName, name)
	for _, v := range e.Values {
		fmt.Fprintf(b, "\t%s: %q,\n", a.goName(v.Name, v.Native), a.goName(v.Name, v.Native))
	}
	b.WriteString("}\n\n")
	fmt.Fprintf(b, "func (%s %s) String() string {\n", recv, name)
	fmt.Fprintf(b, "\tif s, ok := %s[%s]; ok {\n\t\treturn s\n\t}\n", varName, recv)
	fmt.Fprintf(b, "\treturn \"%s(\" + strconv.FormatUint(uint64(%s), 10) + \")\"\n}\n\n", name, recv)
}

func (a *API) emitFlagString(b *strings.Builder, e Enum, name, recv string) {
	fmt.Fprintf(b, "func (%s %s) String() string {\n", recv, name)
	fmt.Fprintf(b, "\tif %s == 0 {\n\t\treturn \"0\"\n\t}\n", recv)
	b.WriteString("\tvar parts []string\n")
	for _, v := range e.Values {
		goName := a.goName(v.Name, v.Native)
		fmt.Fprintf(b, "\tif %s&%s != 0 {\n\t\tparts = append(parts, %q)\n\t}\n", recv, goName, goName)
	}
	b.WriteString("\treturn strings.Join(parts, \"|\")\n}\n\n")
}

// scalarTypes maps Go-facing scalar types to their cgo conversion.
var scalarTypes = map[string]string{
	"int":     "C.int",
	"int32":   "C.Sint32",
	"int64":   "C.Sint64",
	"uint8":   "C.Uint8",
	"uint16":  "C.Uint16",
	"uint32":  "C.Uint32",
	"uint64":  "C.Uint64",
	"float32": "C.float",
	"float64": "C.double",
	"bool":    "C.bool",
}

func (a *API) emitFunction(b *strings.Builder, f Function) error {
	name := a.goName(f.Name, f.Native)
	handles := map[string]string{}
	for _, h := range a.Handles {
		handles[a.goName(h.Name, h.Native)] = h.Native
	}
	enums := map[string]string{}
	for _, e := range a.Enums {
		enums[a.goName(e.Name, e.Native)] = e.Native
	}

	doc := f.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s wraps %s.", name, f.Native)
	}
	fmt.Fprintf(b, "// %s\n", doc)

	// Signature.
	var params []string
	for _, p := range f.Args {
		typ := p.Type
		if _, ok := handles[typ]; ok {
			typ = "*" + typ
		}
		params = append(params, p.Name+" "+typ)
	}
	recv := ""
	if f.Recv != "" {
		recv = fmt.Sprintf("(h *%s) ", f.Recv)
	}
	ret := returnSignature(f, handles)
	fmt.Fprintf(b, "func %s%s(%s) %s {\n", recv, name, strings.Join(params, ", "), ret)

	if f.Recv != "" {
		fmt.Fprintf(b, "\tif !h.valid() {\n\t\treturn %s\n\t}\n", failReturn(f, handles, fmt.Sprintf("fail.InvalidParam(%q)", strcase.ToDelimited(f.Recv, ' '))))
	}

	// Argument marshaling.
	var callArgs []string
	if f.Recv != "" {
		callArgs = append(callArgs, "h.ptr")
	}
	for _, p := range f.Args {
		switch {
		case p.Type == "string":
			fmt.Fprintf(b, "\tc%s := C.CString(%s)\n\tdefer C.free(unsafe.Pointer(c%s))\n", p.Name, p.Name, p.Name)
			callArgs = append(callArgs, "c"+p.Name)
		case handles[p.Type] != "":
			fmt.Fprintf(b, "\tif !%s.valid() {\n\t\treturn %s\n\t}\n", p.Name, failReturn(f, handles, fmt.Sprintf("fail.InvalidParam(%q)", p.Name)))
			callArgs = append(callArgs, p.Name+".ptr")
		case enums[p.Type] != "":
			callArgs = append(callArgs, fmt.Sprintf("C.%s(%s)", enums[p.Type], p.Name))
		case scalarTypes[p.Type] != "":
			callArgs = append(callArgs, fmt.Sprintf("%s(%s)", scalarTypes[p.Type], p.Name))
		default:
			return fmt.Errorf("gen: function %s: unsupported argument type %q", f.Native, p.Type)
		}
	}
	call := fmt.Sprintf("C.%s(%s)", f.Native, strings.Join(callArgs, ", "))

	// Result handling per sentinel.
	switch f.Sentinel {
	case "bool":
		fmt.Fprintf(b, "\treturn fail.CheckBool(bool(%s))\n", call)
	case "null":
		fmt.Fprintf(b, "\tptr := %s\n\tif ptr == nil {\n\t\treturn nil, fail.Err()\n\t}\n", call)
		fmt.Fprintf(b, "\treturn &%s{ptr: ptr}, nil\n", f.Ret)
	case "negative":
		fmt.Fprintf(b, "\tn, err := fail.CheckCode(int(%s))\n\treturn %s(n), err\n", call, f.Ret)
	case "zero":
		fmt.Fprintf(b, "\tid, err := fail.CheckID(uint64(%s))\n\treturn %s(id), err\n", call, f.Ret)
	case "":
		if f.Ret == "" {
			fmt.Fprintf(b, "\t%s\n", call)
		} else if _, ok := enums[f.Ret]; ok {
			fmt.Fprintf(b, "\treturn %s(%s)\n", f.Ret, call)
		} else if f.Ret == "string" {
			fmt.Fprintf(b, "\treturn C.GoString(%s)\n", call)
		} else {
			fmt.Fprintf(b, "\treturn %s(%s)\n", f.Ret, call)
		}
	}
	b.WriteString("}\n\n")
	return nil
}

// returnSignature builds the Go return clause for a function.
func returnSignature(f Function, handles map[string]string) string {
	switch f.Sentinel {
	case "bool":
		return "error"
	case "null":
		return fmt.Sprintf("(*%s, error)", f.Ret)
	case "negative", "zero":
		return fmt.Sprintf("(%s, error)", f.Ret)
	default:
		if f.Ret == "" {
			return ""
		}
		if _, ok := handles[f.Ret]; ok {
			return "*" + f.Ret
		}
		return f.Ret
	}
}

// failReturn builds the early-return statement for a failed validity
// check.
func failReturn(f Function, handles map[string]string, errExpr string) string {
	switch f.Sentinel {
	case "bool":
		return errExpr
	case "null":
		return "nil, " + errExpr
	case "negative", "zero":
		return "0, " + errExpr
	default:
		if f.Ret == "" {
			// Infallible functions ignore invalid handles.
			return ""
		}
		if _, ok := handles[f.Ret]; ok {
			return "nil"
		}
		return zeroValue(f.Ret)
	}
}

func zeroValue(typ string) string {
	switch typ {
	case "string":
		return `""`
	case "bool":
		return "false"
	default:
		return typ + "(0)"
	}
}
