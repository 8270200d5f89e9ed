package command

import (
	"github.com/Scharxi/mini-shell/core/history"
	"github.com/Scharxi/mini-shell/core/vos"
)

// PipelineMode selects how the stages of a pipeline are connected.
type PipelineMode string

const (
	// StreamPipeline runs all stages at once connected by OS pipes.
	StreamPipeline PipelineMode = "stream"
	// BufferPipeline runs stages one after another, each stage's output is
	// collected in memory and becomes the next stage's input.
	BufferPipeline PipelineMode = "buffer"
)

// Env holds everything outside of a Command that it needs to run.
type Env struct {
	// OS provides the default streams and the working directory.
	OS vos.VOS
	// History is where the history builtin reads and clears entries.
	History history.Store
	// Colors controls colored output, nil disables color.
	Colors *ColorPrinter
	// PipelineMode defaults to StreamPipeline.
	PipelineMode PipelineMode
}
