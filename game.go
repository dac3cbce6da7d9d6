package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"oddstream.games/tetris/board"
	"oddstream.games/tetris/delay"
	"oddstream.games/tetris/resource"
	"oddstream.games/tetris/sound"
	"oddstream.games/tetris/util"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "Tetris remake"

	exitFadeDuration   = time.Second
	eventQueueCapacity = 256
)

// asset keys
const (
	fontMain             = "main"
	musicMenu            = "menu"
	soundPageTransition  = "page_transition"
	soundMouseClick      = "mouse_click"
	soundBeforeExplosion = "before_explosion"
	soundExplosion       = "explosion_sound"
	soundLockPiece       = "lock_piece"
	textureMenuBG        = "menu_bg_pic"
	textureAboutBG       = "about_bg_pic"
	textureExplosion     = "block_explosion"
	textureFireTrail     = "fire_trail"
)

var logger = log.WithPrefix("game")

// Resizer is told the new window size when the window is resized.
type Resizer interface {
	UpdateBlockSize(width, height int)
}

// Game owns the pages and switches between them. It implements ebiten.Game.
type Game struct {
	registry *resource.Registry
	events   *EventQueue
	input    *inputCollector
	board    Resizer

	menu    MenuPage
	about   ReturnPage
	play    PlayPage
	pages   [pageCount]Page
	current PageKind

	delay       *delay.Delay
	pendingExit bool
	fadeMusic   bool
	musicToFade sound.Track

	width, height int
	closed        bool
}

var _ ebiten.Game = (*Game)(nil)

func newGame(reg *resource.Registry, b Resizer, menu MenuPage, about ReturnPage, play PlayPage, d *delay.Delay) *Game {
	g := &Game{
		registry: reg,
		events:   NewEventQueue(eventQueueCapacity),
		board:    b,
		menu:     menu,
		about:    about,
		play:     play,
		delay:    d,
		width:    windowWidth,
		height:   windowHeight,
	}
	g.pages = [pageCount]Page{PageMenu: menu, PageAbout: about, PagePlay: play}
	g.current = PageMenu
	return g
}

// Run opens the window and plays until it is closed.
func Run() error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	reg := resource.NewRegistry(sound.NewContext())
	loadResources(reg)

	b := board.New(rng)
	b.UpdateBlockSize(windowWidth, windowHeight)

	g := newGame(reg, b,
		NewMenuMain(reg, windowWidth, windowHeight),
		NewAboutPage(reg, windowWidth, windowHeight),
		NewGamePlayPage(reg, b),
		delay.New())
	g.input = &inputCollector{}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// loadResources loads the fixed asset list. A failure is logged and the game
// carries on with whatever loaded before it.
func loadResources(reg *resource.Registry) *resource.Report {
	report := reg.Load(resource.DefaultManifest())
	if report.Failed != nil {
		logger.Error("resource error", "err", report.Failed, "skipped", report.Skipped)
	} else {
		logger.Debug("resources loaded", "count", len(report.Loaded))
	}
	return report
}

// Layout implements ebiten.Game's Layout. A change of size is queued as a Resized event.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if err := g.events.Insert(Event{Type: EventResized, Width: outsideWidth, Height: outsideHeight}); err != nil {
			logger.Debug("resize event dropped", "err", err)
		}
	}
	return outsideWidth, outsideHeight
}

// Update runs one frame: events, then the delay, then page switching.
func (g *Game) Update() error {
	if g.input != nil {
		g.input.collect(g.events)
	}
	g.pollEvents()
	if !g.handleDelay() {
		g.handlePageSwitching()
	}
	if g.closed {
		return ebiten.Termination
	}
	return nil
}

// Draw draws the current page.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	g.currentPage().Draw(screen)
}

func (g *Game) currentPage() Page {
	return g.pages[g.current]
}

// pollEvents drains the queue. While a delay runs every event is dropped,
// window close requests included.
func (g *Game) pollEvents() {
	for {
		ev, err := g.events.Remove()
		if err != nil {
			return
		}
		if g.delay.IsActive() {
			continue
		}
		switch ev.Type {
		case EventClosed:
			g.close()
		case EventResized:
			g.resize(ev.Width, ev.Height)
		}
		g.currentPage().HandleEvent(ev)
	}
}

// resize lays out every page, not just the current one, so a page shown
// later matches the window
func (g *Game) resize(width, height int) {
	g.board.UpdateBlockSize(width, height)
	for _, p := range g.pages {
		p.Layout(width, height)
	}
}

func (g *Game) close() {
	g.closed = true
}

func (g *Game) switchTo(k PageKind) {
	logger.Debug("page switch", "from", g.current, "to", k)
	g.current = k
	// keys held during the switch belong to the old page
	g.events.Discard(func(ev Event) bool { return ev.Type == EventKeyPressed })
	if g.input != nil {
		g.input.suppressHeld()
	}
}

func (g *Game) handlePageSwitching() {
	pageSwitchSound := g.registry.Sound(soundPageTransition)

	switch g.current {
	case PageMenu:
		switch g.menu.Selection() {
		case MenuAbout:
			pageSwitchSound.Play()
			g.switchTo(PageAbout)
		case MenuExit:
			pageSwitchSound.Play()
			g.pendingExit = true
			g.startMusicFade(musicMenu, exitFadeDuration)
		case MenuPlay:
			pageSwitchSound.Play()
			g.menu.StopBackgroundMusic()
			g.menu.ResetSelection()
			g.switchTo(PagePlay)
		}
	case PageAbout:
		if g.about.WantsToReturn() {
			g.menu.ResetSelection()
			g.switchTo(PageMenu)
			g.about.Reset()
			pageSwitchSound.Play()
		}
	case PagePlay:
		g.play.Update()
		if g.play.WantsToReturn() {
			pageSwitchSound.Play()
			g.play.Reset()
			g.switchTo(PageMenu)
			g.menu.PlayBackgroundMusic()
		}
	}
}

// handleDelay services the delay once per frame. It returns true when the
// delay consumed the frame, in which case no page switching happens.
func (g *Game) handleDelay() bool {
	if !g.delay.IsActive() {
		return false
	}

	if g.delay.IsDone() {
		g.delay.Reset()
		if g.pendingExit {
			if g.musicToFade != nil {
				g.musicToFade.Stop()
			}
			g.close()
		}
		g.fadeMusic = false
		g.musicToFade = nil
		return true
	}

	if g.fadeMusic && g.musicToFade != nil {
		g.musicToFade.SetVolume(fadeVolume(g.delay.Elapsed(), g.delay.Duration()))
	}
	return true
}

// startMusicFade fades the named track out over duration. Calling it again
// while a fade runs restarts the timer with the new track.
func (g *Game) startMusicFade(musicKey string, duration time.Duration) {
	g.musicToFade = g.registry.Music(musicKey)
	g.fadeMusic = true
	g.delay.Start(duration)
}

// fadeVolume is the linear fade-out volume, from sound.MaxVolume at 0 down to 0 at duration.
func fadeVolume(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	v := util.MapValue(elapsed.Seconds(), 0, duration.Seconds(), sound.MaxVolume, 0)
	return util.Clamp(v, 0, sound.MaxVolume)
}
