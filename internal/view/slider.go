package view

import (
	"context"
	"sync"
	"time"
)

// SlideCTA is the call-to-action button on a slide.
type SlideCTA struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Slide is one promotional panel in the hero rotation.
type Slide struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Image    string   `json:"image"`
	CTA      SlideCTA `json:"cta"`
}

// Slider rotates through a fixed slide deck. Its display index is local
// presentation state and has nothing to do with the application store.
type Slider struct {
	mu      sync.Mutex
	slides  []Slide
	current int
}

func NewSlider(slides []Slide) *Slider {
	return &Slider{slides: slides}
}

// Slides returns the full deck.
func (s *Slider) Slides() []Slide {
	return s.slides
}

// Current returns the slide on display and its index.
func (s *Slider) Current() (Slide, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return Slide{}, 0
	}
	return s.slides[s.current], s.current
}

// Next advances to the following slide, wrapping at the end.
func (s *Slider) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return
	}
	s.current = (s.current + 1) % len(s.slides)
}

// Previous steps back one slide, wrapping at the front.
func (s *Slider) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return
	}
	s.current = (s.current + len(s.slides) - 1) % len(s.slides)
}

// GoTo jumps straight to a slide; out-of-range indices are ignored.
func (s *Slider) GoTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.slides) {
		return
	}
	s.current = index
}

// AutoAdvance rotates the deck on a fixed interval until the context is
// canceled. It blocks; run it in its own goroutine.
func (s *Slider) AutoAdvance(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Next()
		}
	}
}
