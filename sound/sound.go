package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"oddstream.games/tetris/util"
)

const SampleRate = 44100

// MaxVolume is the volume of a track played at full level.
const MaxVolume = 100.0

var ErrNoContext = errors.New("no audio context")

var logger = log.WithPrefix("sound")

// Track is a playable sound: either a one-shot effect or a looping music stream.
// Volumes are percentages in [0, MaxVolume].
type Track interface {
	Play()
	Stop()
	IsPlaying() bool
	SetVolume(percent float64)
	Volume() float64
}

// NewContext creates the audio context. Ebiten allows only one per process.
func NewContext() *audio.Context {
	return audio.NewContext(SampleRate)
}

type player struct {
	name   string
	p      *audio.Player
	effect bool
}

var _ Track = (*player)(nil)

// Decode turns encoded audio into a Track. The format is chosen by the
// extension of name (.wav or .ogg). Looping tracks repeat forever and resume
// where they were on Play; effects restart from the beginning on every Play.
func Decode(ctx *audio.Context, name string, data []byte, loop bool) (Track, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio file %s", name)
	}

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	r := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format %q (supported: .wav, .ogg)", ext)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	p, err := ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}
	return &player{name: name, p: p, effect: !loop}, nil
}

func (t *player) Play() {
	if t.effect {
		if err := t.p.Rewind(); err != nil {
			logger.Warn("rewind failed", "track", t.name, "err", err)
		}
	}
	t.p.Play()
}

// Stop pauses playback and rewinds, so the next Play starts from the top.
func (t *player) Stop() {
	t.p.Pause()
	if err := t.p.Rewind(); err != nil {
		logger.Warn("rewind failed", "track", t.name, "err", err)
	}
}

func (t *player) IsPlaying() bool {
	return t.p.IsPlaying()
}

func (t *player) SetVolume(percent float64) {
	t.p.SetVolume(util.Clamp(percent, 0, MaxVolume) / MaxVolume)
}

func (t *player) Volume() float64 {
	return t.p.Volume() * MaxVolume
}

// Silent is a Track that makes no sound. It stands in for assets that failed to load.
type Silent struct {
	volume  float64
	playing bool
}

var _ Track = (*Silent)(nil)

func NewSilent() *Silent {
	return &Silent{volume: MaxVolume}
}

func (s *Silent) Play() { s.playing = true }

func (s *Silent) Stop() { s.playing = false }

func (s *Silent) IsPlaying() bool { return s.playing }

func (s *Silent) SetVolume(percent float64) { s.volume = util.Clamp(percent, 0, MaxVolume) }

func (s *Silent) Volume() float64 { return s.volume }
