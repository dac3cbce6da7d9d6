// Package resource holds the game's assets: fonts, textures, sound effects and
// music, loaded once at startup and looked up by key for the rest of the run.
package resource

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"oddstream.games/tetris/sound"
)

// LoadError reports which asset could not be loaded.
type LoadError struct {
	Key  string
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %q from %s: %v", e.Kind, e.Key, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Report is the outcome of loading a manifest. Loading is sequential and stops
// at the first failure, so assets after Failed are listed in Skipped.
type Report struct {
	Loaded  []string
	Failed  *LoadError
	Skipped []string
}

// OK reports whether every asset loaded.
func (r *Report) OK() bool {
	return r.Failed == nil
}

type faceKey struct {
	key  string
	size float64
}

// Registry is a keyed cache of assets. It is not safe for concurrent use;
// everything happens on the game loop goroutine.
type Registry struct {
	audioContext *audio.Context
	fonts        map[string]*truetype.Font
	faces        map[faceKey]font.Face
	textures     map[string]*ebiten.Image
	sounds       map[string]sound.Track
	music        map[string]sound.Track
	missing      map[string]bool
	logger       *log.Logger
}

// NewRegistry creates an empty registry. audioContext may be nil, in which case
// sounds and music fail to load.
func NewRegistry(audioContext *audio.Context) *Registry {
	return &Registry{
		audioContext: audioContext,
		fonts:        make(map[string]*truetype.Font),
		faces:        make(map[faceKey]font.Face),
		textures:     make(map[string]*ebiten.Image),
		sounds:       make(map[string]sound.Track),
		music:        make(map[string]sound.Track),
		missing:      make(map[string]bool),
		logger:       log.WithPrefix("resource"),
	}
}

// Load loads every asset of m in order, stopping at the first failure.
func (r *Registry) Load(m *Manifest) *Report {
	report := &Report{}
	for i, a := range m.Assets {
		path := m.FullPath(a)
		if err := r.load(a.Kind, a.Key, path); err != nil {
			report.Failed = &LoadError{Key: a.Key, Kind: a.Kind, Path: path, Err: err}
			for _, rest := range m.Assets[i+1:] {
				report.Skipped = append(report.Skipped, rest.Key)
			}
			break
		}
		report.Loaded = append(report.Loaded, a.Key)
	}
	return report
}

func (r *Registry) load(kind Kind, key, path string) error {
	switch kind {
	case KindFont:
		return r.LoadFont(key, path)
	case KindMusic:
		return r.LoadMusic(key, path)
	case KindSound:
		return r.LoadSound(key, path)
	case KindTexture:
		return r.LoadTexture(key, path)
	}
	return fmt.Errorf("unknown asset kind %q", kind)
}

// LoadFont parses a TrueType font file and stores it under key.
func (r *Registry) LoadFont(key, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	r.fonts[key] = f
	for fk := range r.faces {
		if fk.key == key {
			delete(r.faces, fk)
		}
	}
	return nil
}

// LoadMusic decodes a looping music track and stores it under key.
func (r *Registry) LoadMusic(key, path string) error {
	t, err := r.decodeAudio(path, true)
	if err != nil {
		return err
	}
	r.music[key] = t
	return nil
}

// LoadSound decodes a one-shot sound effect and stores it under key.
func (r *Registry) LoadSound(key, path string) error {
	t, err := r.decodeAudio(path, false)
	if err != nil {
		return err
	}
	r.sounds[key] = t
	return nil
}

func (r *Registry) decodeAudio(path string, loop bool) (sound.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return sound.Decode(r.audioContext, path, data, loop)
}

// LoadTexture decodes a PNG or JPEG image and stores it under key.
func (r *Registry) LoadTexture(key, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	r.textures[key] = ebiten.NewImageFromImage(img)
	return nil
}

// SetSound stores an already decoded sound effect under key.
func (r *Registry) SetSound(key string, t sound.Track) {
	r.sounds[key] = t
}

// SetMusic stores an already decoded music track under key.
func (r *Registry) SetMusic(key string, t sound.Track) {
	r.music[key] = t
}

// Sound returns the effect stored under key, or a silent track if it was never loaded.
func (r *Registry) Sound(key string) sound.Track {
	if t, ok := r.sounds[key]; ok {
		return t
	}
	r.warnMissing(KindSound, key)
	t := sound.NewSilent()
	r.sounds[key] = t
	return t
}

// Music returns the track stored under key, or a silent track if it was never loaded.
func (r *Registry) Music(key string) sound.Track {
	if t, ok := r.music[key]; ok {
		return t
	}
	r.warnMissing(KindMusic, key)
	t := sound.NewSilent()
	r.music[key] = t
	return t
}

// Texture returns the image stored under key, or nil if it was never loaded.
func (r *Registry) Texture(key string) *ebiten.Image {
	img, ok := r.textures[key]
	if !ok {
		r.warnMissing(KindTexture, key)
	}
	return img
}

// Face returns a face of the given pixel size for the font stored under key.
// Faces are cached per size. Without the font a fixed bitmap face is returned.
func (r *Registry) Face(key string, size float64) font.Face {
	fk := faceKey{key: key, size: size}
	if face, ok := r.faces[fk]; ok {
		return face
	}
	f, ok := r.fonts[key]
	if !ok {
		r.warnMissing(KindFont, key)
		return basicfont.Face7x13
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[fk] = face
	return face
}

func (r *Registry) warnMissing(kind Kind, key string) {
	id := string(kind) + ":" + key
	if r.missing[id] {
		return
	}
	r.missing[id] = true
	r.logger.Warn("asset not loaded", "kind", kind, "key", key)
}
