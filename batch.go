package wardley

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// batchKey groups render commands that can be submitted in a single draw call.
type batchKey struct {
	image *ebiten.Image
}

func commandBatchKey(cmd *RenderCommand) batchKey {
	return batchKey{image: cmd.meshImage}
}

// submitBatches iterates sorted commands, coalescing consecutive meshes that
// sample the same image into a single DrawTriangles32 call. Vertex colors are
// already premultiplied by transformVertices.
func (s *Scene) submitBatches(target *ebiten.Image) {
	if len(s.commands) == 0 {
		return
	}

	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]

	var currentKey batchKey
	inRun := false

	for i := range s.commands {
		cmd := &s.commands[i]
		if cmd.meshImage == nil || len(cmd.meshVerts) == 0 || len(cmd.meshInds) == 0 {
			continue
		}
		key := commandBatchKey(cmd)
		if inRun && key != currentKey {
			s.flushBatch(target, currentKey)
		}
		currentKey = key
		inRun = true
		s.appendMesh(cmd)
	}

	s.flushBatch(target, currentKey)
}

// appendMesh appends a command's transformed vertices to the batch, offsetting
// its indices past the vertices already queued.
func (s *Scene) appendMesh(cmd *RenderCommand) {
	base := uint32(len(s.batchVerts))
	s.batchVerts = append(s.batchVerts, cmd.meshVerts...)
	for _, idx := range cmd.meshInds {
		s.batchInds = append(s.batchInds, base+uint32(idx))
	}
}

// flushBatch submits accumulated vertices as a single DrawTriangles32 call.
func (s *Scene) flushBatch(target *ebiten.Image, key batchKey) {
	if len(s.batchVerts) == 0 {
		return
	}
	if key.image != nil {
		var triOp ebiten.DrawTrianglesOptions
		triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		triOp.AntiAlias = s.AntiAlias
		target.DrawTriangles32(s.batchVerts, s.batchInds, key.image, &triOp)
	}
	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
}
