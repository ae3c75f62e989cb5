package main

import (
	"fmt"

	nescore "github.com/example/nescore"
	"github.com/veandco/go-sdl2/sdl"
)

// audioDevice renders nescore's per-channel configuration (frequency, duty,
// amplitude) into a square/triangle waveform at a 44.1kHz sample rate,
// in place of the teacher's portaudio+WAV-envelope pipeline: spec.md's APU
// contract is a config snapshot, not a PCM stream, so the host is what owns
// the oscillator phase, per SPEC_FULL.md's APU section.
type audioDevice struct {
	id      sdl.AudioDeviceID
	console *nescore.Console

	sampleRate float64
	phase      [3]float64
}

func openAudio(console *nescore.Console) (*audioDevice, error) {
	d := &audioDevice{console: console, sampleRate: 44100}

	spec := sdl.AudioSpec{
		Freq:     44100,
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  1024,
	}

	id, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("openAudio: %s", err)
	}
	d.id = id

	sdl.PauseAudioDevice(id, false)
	return d, nil
}

// render returns n interleaved mono samples mixed from the three channels'
// current configuration. It is driven from the main loop rather than an
// SDL callback, keeping all console access on one goroutine.
func (d *audioDevice) render(n int) []float32 {
	out := make([]float32, n)
	channels := d.console.APU.Sample()

	for i := range out {
		var mix float32
		for c := range channels {
			ch := channels[c]
			if !ch.Enabled || ch.Frequency <= 0 {
				continue
			}
			d.phase[c] += ch.Frequency / d.sampleRate
			d.phase[c] -= float64(int(d.phase[c]))

			var wave float64
			if ch.Duty > 0 {
				if d.phase[c] < ch.Duty {
					wave = 1
				} else {
					wave = -1
				}
			} else {
				// Triangle: a symmetric ramp over the period.
				wave = 4*absFloat(d.phase[c]-0.5) - 1
			}
			mix += float32(wave * ch.Amplitude)
		}
		out[i] = mix / 3
	}

	return out
}

func (d *audioDevice) queue(n int) {
	samples := d.render(n)
	sdl.QueueAudio(d.id, samples)
}

func (d *audioDevice) Close() error {
	sdl.CloseAudioDevice(d.id)
	return nil
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
