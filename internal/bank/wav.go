// SPDX-License-Identifier: MIT
package bank

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"sndbank/internal/pcm"
)

// ReadFile decodes a mono 16-bit WAV file into a pcm.Buffer, picking up
// loop points from the sampler ("smpl") chunk when one is present.
func ReadFile(path string) (*pcm.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := wav.NewDecoder(bytes.NewReader(data))
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode PCM: %w", err)
	}
	if d.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth %d (want 16)", d.BitDepth)
	}

	// Metadata lives in chunks the PCM pass skipped, so scan the file again.
	md := wav.NewDecoder(bytes.NewReader(data))
	md.ReadMetadata()
	if err := md.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var loop *pcm.Loop
	if md.Metadata != nil && md.Metadata.SamplerInfo != nil && len(md.Metadata.SamplerInfo.Loops) > 0 {
		l := md.Metadata.SamplerInfo.Loops[0]
		loop = &pcm.Loop{Start: int(l.Start), End: int(l.End)}
	}

	return pcm.FromIntBuffer(buf, loop)
}

// WriteFile encodes b as a mono 16-bit WAV file. Loop points are written
// as a sampler chunk appended after the encoder has finished, since the
// encoder itself only knows how to emit fmt/data/LIST chunks.
func WriteFile(path string, b *pcm.Buffer) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, b.SampleRate, 16, 1, 1)
	if err := enc.Write(b.IntBuffer()); err != nil {
		f.Close()
		return fmt.Errorf("encode PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize WAV: %w", err)
	}

	if b.Loop != nil {
		if err := appendSamplerChunk(f, b); err != nil {
			f.Close()
			return fmt.Errorf("write sampler chunk: %w", err)
		}
	}

	return f.Close()
}

// samplerChunk mirrors the payload of a RIFF "smpl" chunk carrying a
// single loop descriptor: nine header fields followed by six loop fields,
// all little-endian uint32.
type samplerChunk struct {
	Manufacturer      uint32
	Product           uint32
	SamplePeriod      uint32 // nanoseconds per sample
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	NumSampleLoops    uint32
	SamplerData       uint32

	CuePointID uint32
	Type       uint32 // 0 = forward loop
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32 // 0 = loop indefinitely
}

func appendSamplerChunk(f *os.File, b *pcm.Buffer) error {
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	chunk := samplerChunk{
		SamplePeriod:   uint32(int64(1e9) / int64(b.SampleRate)),
		MIDIUnityNote:  60,
		NumSampleLoops: 1,
		Start:          uint32(b.Loop.Start),
		End:            uint32(b.Loop.End),
	}

	if _, err := f.Write([]byte("smpl")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(binary.Size(chunk))); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, chunk); err != nil {
		return err
	}

	// The encoder finalized the RIFF size before the chunk was appended;
	// patch it to cover the new file length.
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	var riffSize [4]byte
	binary.LittleEndian.PutUint32(riffSize[:], uint32(size-8))
	_, err = f.WriteAt(riffSize[:], 4)
	return err
}
