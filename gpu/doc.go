// Package gpu binds SDL3's GPU API: an explicit, modern graphics and
// compute interface backed by Vulkan, D3D12, or Metal.
//
// # Workflow
//
// Create a Device, claim a window for it, then per frame: acquire a
// CommandBuffer, acquire the swapchain texture, record passes, and submit.
// Resources (buffers, textures, samplers, shaders, pipelines) are created
// up front and released explicitly when no longer needed.
//
// # Threading
//
// A CommandBuffer must only be used on the goroutine (and OS thread) that
// acquired it; lock the thread if goroutines may migrate. Submitted
// command buffers execute in submission order relative to each other.
// Both rules are properties of the underlying SDL GPU implementation and
// are documented here rather than enforced.
//
// # Shaders
//
// CreateShader takes bytecode in one of the device's supported formats
// plus the shader's resource binding counts. The shadercross package
// cross-compiles shader source offline and extracts those counts from the
// SPIR-V so they do not have to be maintained by hand.
package gpu
