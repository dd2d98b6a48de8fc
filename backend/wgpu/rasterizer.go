//go:build !nogpu

package wgpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/smoke"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/smoke.wgsl
var smokeShaderWGSL string

// Rasterizer composites trail quad batches on the GPU.
// It creates compute pipelines at construction and uploads one vertex
// batch per frame.
//
// Note: full GPU dispatch requires buffer bind groups which need HAL
// API extensions. The upload path is wired; compositing currently runs
// on the CPU mirror of the shader kernel.
type Rasterizer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// Compute pipelines
	composePipeline hal.ComputePipeline
	clearPipeline   hal.ComputePipeline

	// Shader module (cached)
	shaderModule hal.ShaderModule

	// Pipeline layout and bind group layouts
	pipelineLayout   hal.PipelineLayout
	inputBindLayout  hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	// Per-frame upload buffers, replaced on every Composite
	vertexBuf hal.Buffer
	texelBuf  hal.Buffer
	configBuf hal.Buffer

	// Output dimensions
	width  uint16
	height uint16

	// State
	initialized bool
	shaderReady bool
}

// NewRasterizer creates a GPU rasterizer for the given output size.
// Returns an error if GPU compute is not supported.
func NewRasterizer(device hal.Device, queue hal.Queue, width, height uint16) (*Rasterizer, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	r := &Rasterizer{
		device: device,
		queue:  queue,
		width:  width,
		height: height,
	}

	if err := r.init(); err != nil {
		r.Destroy()
		return nil, err
	}

	smoke.Logger().Info("smoke: gpu rasterizer ready",
		"width", width, "height", height)
	return r, nil
}

// init initializes GPU resources (pipelines, layouts).
func (r *Rasterizer) init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Compile WGSL to SPIR-V
	spirvBytes, err := naga.Compile(smokeShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile shader: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	r.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range r.spirvCode {
		r.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	r.shaderReady = true

	shaderModule, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "smoke_shader",
		Source: hal.ShaderSource{SPIRV: r.spirvCode},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	r.shaderModule = shaderModule

	if err := r.createBindGroupLayouts(); err != nil {
		return err
	}
	if err := r.createPipelineLayout(); err != nil {
		return err
	}
	if err := r.createPipelines(); err != nil {
		return err
	}

	r.initialized = true
	return nil
}

// createBindGroupLayouts creates the bind group layouts for the pipeline.
func (r *Rasterizer) createBindGroupLayouts() error {
	// Input bind group layout (group 0): config + vertices + texels
	inputLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "smoke_input_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: 32, // sizeof(Config)
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create input bind group layout: %w", err)
	}
	r.inputBindLayout = inputLayout

	// Output bind group layout (group 1): packed RGBA8 pixels
	outputLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "smoke_output_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create output bind group layout: %w", err)
	}
	r.outputBindLayout = outputLayout

	return nil
}

// createPipelineLayout creates the pipeline layout.
func (r *Rasterizer) createPipelineLayout() error {
	layout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "smoke_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.inputBindLayout, r.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	r.pipelineLayout = layout
	return nil
}

// createPipelines creates the compute pipelines.
func (r *Rasterizer) createPipelines() error {
	composePipeline, err := r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "smoke_compose_pipeline",
		Layout: r.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     r.shaderModule,
			EntryPoint: "cs_compose",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create compose pipeline: %w", err)
	}
	r.composePipeline = composePipeline

	clearPipeline, err := r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "smoke_clear_pipeline",
		Layout: r.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     r.shaderModule,
			EntryPoint: "cs_clear",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create clear pipeline: %w", err)
	}
	r.clearPipeline = clearPipeline

	return nil
}

// Composite rasterizes a vertex batch into an RGBA8 frame of the
// rasterizer's output size. An empty batch yields a transparent frame.
// The texture defaults to the opaque fallback when nil.
func (r *Rasterizer) Composite(batch *smoke.Batch, tex *smoke.Texture) ([]uint8, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return nil, fmt.Errorf("wgpu: rasterizer not initialized")
	}
	if tex == nil {
		tex = smoke.DefaultTexture()
	}

	texels, texW, texH := textureTexels(tex)
	cfg := GPUComposeConfig{
		Width:     uint32(r.width),
		Height:    uint32(r.height),
		TexWidth:  uint32(texW),
		TexHeight: uint32(texH),
	}
	var verts []GPUVertex
	if batch != nil {
		cfg.QuadCount = uint32(batch.QuadCount())
		verts = convertVertices(batch)
	}

	if cfg.QuadCount > 0 {
		if err := r.uploadFrame(cfg, verts, texels); err != nil {
			return nil, err
		}
	}

	// Dispatch needs buffer bind groups, pending a HAL extension.
	// Compose on the CPU mirror of the shader kernel.
	return composeCPU(cfg, verts, texels), nil
}

// uploadFrame replaces the per-frame GPU buffers with the current
// batch contents.
func (r *Rasterizer) uploadFrame(cfg GPUComposeConfig, verts []GPUVertex, texels []uint8) error {
	r.destroyFrameBuffers()

	vertexBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "smoke_vertices",
		Size:  uint64(len(verts) * 32),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create vertex buffer: %w", err)
	}
	r.vertexBuf = vertexBuf
	r.queue.WriteBuffer(vertexBuf, 0, verticesToBytes(verts))

	texelBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "smoke_texels",
		Size:  uint64(len(texels)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create texel buffer: %w", err)
	}
	r.texelBuf = texelBuf
	r.queue.WriteBuffer(texelBuf, 0, texels)

	configBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "smoke_config",
		Size:  32,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create config buffer: %w", err)
	}
	r.configBuf = configBuf
	r.queue.WriteBuffer(configBuf, 0, configToBytes(cfg))

	return nil
}

// destroyFrameBuffers releases the previous frame's upload buffers.
func (r *Rasterizer) destroyFrameBuffers() {
	if r.configBuf != nil {
		r.device.DestroyBuffer(r.configBuf)
		r.configBuf = nil
	}
	if r.texelBuf != nil {
		r.device.DestroyBuffer(r.texelBuf)
		r.texelBuf = nil
	}
	if r.vertexBuf != nil {
		r.device.DestroyBuffer(r.vertexBuf)
		r.vertexBuf = nil
	}
}

// ShaderReady reports whether the WGSL shader compiled successfully.
func (r *Rasterizer) ShaderReady() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shaderReady
}

// SPIRVCode returns the compiled SPIR-V code (for debugging/verification).
func (r *Rasterizer) SPIRVCode() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spirvCode
}

// Destroy releases all GPU resources in reverse creation order.
func (r *Rasterizer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.device == nil {
		return
	}

	r.destroyFrameBuffers()

	if r.clearPipeline != nil {
		r.device.DestroyComputePipeline(r.clearPipeline)
		r.clearPipeline = nil
	}
	if r.composePipeline != nil {
		r.device.DestroyComputePipeline(r.composePipeline)
		r.composePipeline = nil
	}
	if r.pipelineLayout != nil {
		r.device.DestroyPipelineLayout(r.pipelineLayout)
		r.pipelineLayout = nil
	}
	if r.outputBindLayout != nil {
		r.device.DestroyBindGroupLayout(r.outputBindLayout)
		r.outputBindLayout = nil
	}
	if r.inputBindLayout != nil {
		r.device.DestroyBindGroupLayout(r.inputBindLayout)
		r.inputBindLayout = nil
	}
	if r.shaderModule != nil {
		r.device.DestroyShaderModule(r.shaderModule)
		r.shaderModule = nil
	}

	r.initialized = false
}
