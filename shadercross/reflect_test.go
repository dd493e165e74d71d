package shadercross

import (
	"encoding/binary"
	"testing"
)

// asm assembles instructions into a SPIR-V binary. Each instruction is
// [opcode, operands...]; the word count prefix is computed here.
func asm(instrs ...[]uint32) []byte {
	words := []uint32{spirvMagic, 0x00010300, 0, 100, 0}
	for _, ins := range instrs {
		words = append(words, uint32(len(ins))<<16|ins[0])
		words = append(words, ins[1:]...)
	}
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

// "main" packed little-endian with its nul terminator.
var mainName = []uint32{0x6E69616D, 0}

func TestReflectFragmentResources(t *testing.T) {
	// One combined image sampler and one uniform buffer block.
	code := asm(
		append([]uint32{opEntryPoint, executionModelFragment, 1}, mainName...),
		[]uint32{opDecorate, 20, decorationBlock},
		[]uint32{opTypeImage, 10, 90, 1, 0, 0, 0, 1, 0},
		[]uint32{opTypeSampledImage, 11, 10},
		[]uint32{opTypePointer, 12, storageClassUniformConstant, 11},
		[]uint32{opVariable, 12, 13, storageClassUniformConstant},
		[]uint32{opTypeStruct, 20},
		[]uint32{opTypePointer, 21, storageClassUniform, 20},
		[]uint32{opVariable, 21, 22, storageClassUniform},
	)

	r, err := Reflect(code)
	if err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}
	if r.Stage != StageFragment {
		t.Errorf("Stage = %v, want %v", r.Stage, StageFragment)
	}
	if r.Entrypoint != "main" {
		t.Errorf("Entrypoint = %q, want %q", r.Entrypoint, "main")
	}
	if r.NumSamplers != 1 {
		t.Errorf("NumSamplers = %d, want 1", r.NumSamplers)
	}
	if r.NumUniformBuffers != 1 {
		t.Errorf("NumUniformBuffers = %d, want 1", r.NumUniformBuffers)
	}
	if r.NumStorageTextures != 0 || r.NumStorageBuffers != 0 {
		t.Errorf("storage counts = %d/%d, want 0/0", r.NumStorageTextures, r.NumStorageBuffers)
	}
}

func TestReflectComputeStorageResources(t *testing.T) {
	// A storage image (sampled operand 2), a StorageBuffer-class buffer,
	// and a legacy BufferBlock buffer in the Uniform class.
	code := asm(
		append([]uint32{opEntryPoint, executionModelCompute, 1}, mainName...),
		[]uint32{opDecorate, 30, decorationBufferBlock},
		[]uint32{opTypeImage, 10, 90, 1, 0, 0, 0, 2, 0},
		[]uint32{opTypePointer, 11, storageClassUniformConstant, 10},
		[]uint32{opVariable, 11, 12, storageClassUniformConstant},
		[]uint32{opTypeStruct, 20},
		[]uint32{opTypePointer, 21, storageClassStorageBuffer, 20},
		[]uint32{opVariable, 21, 22, storageClassStorageBuffer},
		[]uint32{opTypeStruct, 30},
		[]uint32{opTypePointer, 31, storageClassUniform, 30},
		[]uint32{opVariable, 31, 32, storageClassUniform},
	)

	r, err := Reflect(code)
	if err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}
	if r.Stage != StageCompute {
		t.Errorf("Stage = %v, want %v", r.Stage, StageCompute)
	}
	if r.NumStorageTextures != 1 {
		t.Errorf("NumStorageTextures = %d, want 1", r.NumStorageTextures)
	}
	if r.NumStorageBuffers != 2 {
		t.Errorf("NumStorageBuffers = %d, want 2", r.NumStorageBuffers)
	}
	if r.NumSamplers != 0 || r.NumUniformBuffers != 0 {
		t.Errorf("sampler/uniform counts = %d/%d, want 0/0", r.NumSamplers, r.NumUniformBuffers)
	}
}

func TestReflectSamplerArray(t *testing.T) {
	// An array of combined image samplers counts once per variable.
	code := asm(
		append([]uint32{opEntryPoint, executionModelVertex, 1}, mainName...),
		[]uint32{opTypeImage, 10, 90, 1, 0, 0, 0, 1, 0},
		[]uint32{opTypeSampledImage, 11, 10},
		[]uint32{opTypeArray, 12, 11, 4},
		[]uint32{opTypePointer, 13, storageClassUniformConstant, 12},
		[]uint32{opVariable, 13, 14, storageClassUniformConstant},
	)

	r, err := Reflect(code)
	if err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}
	if r.Stage != StageVertex {
		t.Errorf("Stage = %v, want %v", r.Stage, StageVertex)
	}
	if r.NumSamplers != 1 {
		t.Errorf("NumSamplers = %d, want 1", r.NumSamplers)
	}
}

func TestReflectSeparateSampler(t *testing.T) {
	code := asm(
		append([]uint32{opEntryPoint, executionModelFragment, 1}, mainName...),
		[]uint32{opTypeSampler, 10},
		[]uint32{opTypePointer, 11, storageClassUniformConstant, 10},
		[]uint32{opVariable, 11, 12, storageClassUniformConstant},
	)

	r, err := Reflect(code)
	if err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}
	if r.NumSamplers != 1 {
		t.Errorf("NumSamplers = %d, want 1", r.NumSamplers)
	}
}

func TestReflectRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		code []byte
	}{
		{"empty", nil},
		{"short", []byte{1, 2, 3, 4}},
		{"misaligned", make([]byte, 21)},
		{"bad magic", make([]byte, 24)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Reflect(tt.code); err == nil {
				t.Error("Reflect() error = nil, want error")
			}
		})
	}
}

func TestReflectTruncatedInstruction(t *testing.T) {
	// An instruction whose word count runs past the module end.
	code := asm()
	extra := make([]byte, 4)
	binary.LittleEndian.PutUint32(extra, 5<<16|opVariable)
	if _, err := Reflect(append(code, extra...)); err == nil {
		t.Error("Reflect() error = nil, want error")
	}
}

func TestDecodeLiteralString(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  string
	}{
		{"main", []uint32{0x6E69616D, 0}, "main"},
		{"empty", []uint32{0}, ""},
		{"short", []uint32{0x00006376}, "vc"},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeLiteralString(tt.words); got != tt.want {
				t.Errorf("decodeLiteralString() = %q, want %q", got, tt.want)
			}
		})
	}
}
