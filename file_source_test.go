package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRawComplexFloat32(t *testing.T) {
	name := filepath.Join(t.TempDir(), "capture.cf32")
	f, err := os.Create(name)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		require.NoError(t, binary.Write(f, binary.LittleEndian, [2]float32{float32(i), -float32(i)}))
	}
	require.NoError(t, f.Close())

	source, err := loadSource(name, 2e6)
	require.NoError(t, err)
	assert.Equal(t, int64(16), source.Count())
	assert.Equal(t, 2e6, source.Rate())
	samples := source.Get(3, 5)
	require.Len(t, samples, 2)
	assert.Equal(t, complex(3, -3), samples[0])
	assert.Equal(t, complex(4, -4), samples[1])
}

func TestLoadRawComplexInt16(t *testing.T) {
	name := filepath.Join(t.TempDir(), "capture.cs16")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, binary.Write(f, binary.LittleEndian, [2]int16{16384, -16384}))
	require.NoError(t, f.Close())

	source, err := loadSource(name, 1e6)
	require.NoError(t, err)
	require.Equal(t, int64(1), source.Count())
	assert.Equal(t, complex(0.5, -0.5), source.Get(0, 1)[0])
}

func TestComplexFromPCMFirstChannel(t *testing.T) {
	pcm := &audio.IntBuffer{
		Data:           []int{16384, 0, -16384, 0, 8192, 0},
		Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
		SourceBitDepth: 16,
	}

	buf := complexFromPCM(pcm)
	require.Len(t, buf, 3)
	assert.Equal(t, complex(0.5, 0), buf[0])
	assert.Equal(t, complex(-0.5, 0), buf[1])
	assert.Equal(t, complex(0.25, 0), buf[2])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loadSource(filepath.Join(t.TempDir(), "missing.cf32"), 1e6)
	assert.Error(t, err)
}
