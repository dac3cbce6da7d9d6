package main

import "github.com/hajimehoshi/ebiten/v2"

// PageKind tags one of the game's full-screen pages.
type PageKind int

const (
	PageMenu PageKind = iota
	PageAbout
	PagePlay
	pageCount
)

func (k PageKind) String() string {
	switch k {
	case PageMenu:
		return "menu"
	case PageAbout:
		return "about"
	case PagePlay:
		return "play"
	}
	return "unknown"
}

// Page interface defines the API for each full-screen page
// each page (Menu, About, GamePlay) must implement these
type Page interface {
	Kind() PageKind
	HandleEvent(Event)
	Layout(width, height int)
	Draw(*ebiten.Image)
}

// MenuPage is the main menu: the player picks an option, the Game acts on it.
type MenuPage interface {
	Page
	Selection() MenuOption
	ResetSelection()
	PlayBackgroundMusic()
	StopBackgroundMusic()
}

// ReturnPage is a page the player leaves by asking to go back to the menu.
type ReturnPage interface {
	Page
	WantsToReturn() bool
	Reset()
}

// PlayPage is the gameplay page, advanced once per frame.
type PlayPage interface {
	ReturnPage
	Update()
}
