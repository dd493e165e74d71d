package shadercross

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// spirvMagic is the first word of every SPIR-V module in native byte
// order.
const spirvMagic = 0x07230203

// SPIR-V opcodes and operand values consumed by the reflector.
const (
	opEntryPoint       = 15
	opTypeImage        = 25
	opTypeSampler      = 26
	opTypeSampledImage = 27
	opTypeArray        = 28
	opTypeStruct       = 30
	opTypePointer      = 32
	opVariable         = 59
	opDecorate         = 71

	decorationBlock       = 2
	decorationBufferBlock = 3

	storageClassUniformConstant = 0
	storageClassUniform         = 2
	storageClassStorageBuffer   = 12

	executionModelVertex   = 0
	executionModelFragment = 4
	executionModelCompute  = 5
)

// Stage identifies the pipeline stage a shader module targets.
type Stage int

const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Reflection holds the resource counts a shader declares, in the order
// the GPU API needs them at shader creation time.
type Reflection struct {
	Stage              Stage  `json:"stage"`
	Entrypoint         string `json:"entrypoint"`
	NumSamplers        uint32 `json:"num_samplers"`
	NumStorageTextures uint32 `json:"num_storage_textures"`
	NumStorageBuffers  uint32 `json:"num_storage_buffers"`
	NumUniformBuffers  uint32 `json:"num_uniform_buffers"`
}

var errTruncated = errors.New("shadercross: truncated SPIR-V module")

// Reflect parses a SPIR-V binary and counts the resources its global
// variables declare. The binary must be little-endian, which is what
// every tool in the pipeline emits.
func Reflect(code []byte) (Reflection, error) {
	var r Reflection
	if len(code) < 20 || len(code)%4 != 0 {
		return r, errTruncated
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	if words[0] != spirvMagic {
		return r, fmt.Errorf("shadercross: bad SPIR-V magic 0x%08x", words[0])
	}

	type imageType struct {
		sampled uint32
	}
	images := map[uint32]imageType{}
	samplers := map[uint32]bool{}
	sampledImages := map[uint32]uint32{} // sampled image id -> image type id
	arrays := map[uint32]uint32{}        // array id -> element type id
	blockStructs := map[uint32]bool{}
	bufferBlockStructs := map[uint32]bool{}
	type pointerType struct {
		storageClass uint32
		pointee      uint32
	}
	pointers := map[uint32]pointerType{}
	type variable struct {
		typeID       uint32
		storageClass uint32
	}
	var vars []variable

	// Header is 5 words; instructions follow.
	for i := 5; i < len(words); {
		word := words[i]
		wordCount := int(word >> 16)
		opcode := word & 0xFFFF
		if wordCount == 0 || i+wordCount > len(words) {
			return r, errTruncated
		}
		operands := words[i+1 : i+wordCount]

		switch opcode {
		case opEntryPoint:
			if len(operands) < 3 {
				return r, errTruncated
			}
			switch operands[0] {
			case executionModelVertex:
				r.Stage = StageVertex
			case executionModelFragment:
				r.Stage = StageFragment
			case executionModelCompute:
				r.Stage = StageCompute
			}
			r.Entrypoint = decodeLiteralString(operands[2:])
		case opTypeImage:
			if len(operands) < 7 {
				return r, errTruncated
			}
			images[operands[0]] = imageType{sampled: operands[6]}
		case opTypeSampler:
			if len(operands) < 1 {
				return r, errTruncated
			}
			samplers[operands[0]] = true
		case opTypeSampledImage:
			if len(operands) < 2 {
				return r, errTruncated
			}
			sampledImages[operands[0]] = operands[1]
		case opTypeArray:
			if len(operands) < 2 {
				return r, errTruncated
			}
			arrays[operands[0]] = operands[1]
		case opTypePointer:
			if len(operands) < 3 {
				return r, errTruncated
			}
			pointers[operands[0]] = pointerType{storageClass: operands[1], pointee: operands[2]}
		case opDecorate:
			if len(operands) >= 2 {
				switch operands[1] {
				case decorationBlock:
					blockStructs[operands[0]] = true
				case decorationBufferBlock:
					bufferBlockStructs[operands[0]] = true
				}
			}
		case opVariable:
			if len(operands) < 3 {
				return r, errTruncated
			}
			vars = append(vars, variable{typeID: operands[0], storageClass: operands[2]})
		}
		i += wordCount
	}

	// Resolve each global variable through its pointer type and count it
	// by what it points at. Arrays count as their element type.
	resolve := func(id uint32) uint32 {
		for {
			elem, ok := arrays[id]
			if !ok {
				return id
			}
			id = elem
		}
	}
	for _, v := range vars {
		pt, ok := pointers[v.typeID]
		if !ok {
			continue
		}
		pointee := resolve(pt.pointee)
		switch v.storageClass {
		case storageClassUniformConstant:
			if _, ok := sampledImages[pointee]; ok {
				r.NumSamplers++
			} else if samplers[pointee] {
				r.NumSamplers++
			} else if img, ok := images[pointee]; ok {
				// sampled == 2 marks a read/write storage image.
				if img.sampled == 2 {
					r.NumStorageTextures++
				} else {
					r.NumSamplers++
				}
			}
		case storageClassUniform:
			if bufferBlockStructs[pointee] {
				r.NumStorageBuffers++
			} else if blockStructs[pointee] {
				r.NumUniformBuffers++
			}
		case storageClassStorageBuffer:
			r.NumStorageBuffers++
		}
	}
	return r, nil
}

// decodeLiteralString reads a nul-terminated UTF-8 string packed
// little-endian into SPIR-V words.
func decodeLiteralString(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf)
			}
			buf = append(buf, b)
		}
	}
	return string(buf)
}
