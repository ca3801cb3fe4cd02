package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	log "github.com/sirupsen/logrus"
)

// loadSource reads a whole recording into a memory source. The format is
// picked from the file extension: .cs16 is raw interleaved little-endian
// int16 I/Q, .wav is decoded with its own sample rate and a zero imaginary
// part, anything else is treated as raw interleaved little-endian float32
// I/Q. The rate argument applies to the raw formats only.
func loadSource(name string, rate float64) (*MemorySource[complex128], error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return loadWav(name)
	case ".cs16":
		buf, err := readComplexInt16(name)
		if err != nil {
			return nil, err
		}
		log.Infof("Loaded %v int16 I/Q samples from %s", len(buf), name)
		return NewMemorySource(buf, rate), nil
	default:
		buf, err := readComplexFloat32(name)
		if err != nil {
			return nil, err
		}
		log.Infof("Loaded %v float32 I/Q samples from %s", len(buf), name)
		return NewMemorySource(buf, rate), nil
	}
}

func readComplexFloat32(name string) ([]complex128, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	buf := make([]complex128, 0)
	for {
		var v [2]float32
		err := binary.Read(file, binary.LittleEndian, &v)
		if err != nil {
			break
		}
		buf = append(buf, complex(float64(v[0]), float64(v[1])))
	}
	return buf, nil
}

func readComplexInt16(name string) ([]complex128, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	buf := make([]complex128, 0)
	for {
		var v [2]int16
		err := binary.Read(file, binary.LittleEndian, &v)
		if err != nil {
			break
		}
		buf = append(buf, complex(float64(v[0])/32768, float64(v[1])/32768))
	}
	return buf, nil
}

func loadWav(name string) (*MemorySource[complex128], error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	d := wav.NewDecoder(file)
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if pcm.Format == nil {
		return nil, fmt.Errorf("%s: no format information", name)
	}
	buf := complexFromPCM(pcm)
	log.Infof("Loaded %v wav samples from %s at %v Hz", len(buf), name, pcm.Format.SampleRate)
	return NewMemorySource(buf, float64(pcm.Format.SampleRate)), nil
}

// complexFromPCM takes the first channel of an integer PCM buffer and scales
// it into [-1, 1) complex samples with a zero imaginary part.
func complexFromPCM(pcm *audio.IntBuffer) []complex128 {
	depth := pcm.SourceBitDepth
	if depth == 0 {
		depth = 16
	}
	scale := float64(int64(1) << uint(depth-1))
	channels := pcm.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	n := len(pcm.Data) / channels
	buf := make([]complex128, n)
	for i := 0; i < n; i++ {
		buf[i] = complex(float64(pcm.Data[i*channels])/scale, 0)
	}
	return buf
}
