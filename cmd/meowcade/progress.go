package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "won"
)

type progressData struct {
	Won []string `yaml:"won"`
}

// Progress remembers which minigames have been won. With a nil manager it
// lives in memory only.
type Progress struct {
	manager *gdata.Manager
	won     map[MinigameKind]bool
}

// OpenProgress opens the save store for appName. An empty name, or a store
// that cannot be opened, falls back to memory.
func OpenProgress(appName string) *Progress {
	if appName == "" {
		return NewProgress(nil)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[progress] open %q: %v (progress kept in memory)", appName, err)
		return NewProgress(nil)
	}
	return NewProgress(m)
}

func NewProgress(m *gdata.Manager) *Progress {
	p := &Progress{manager: m, won: map[MinigameKind]bool{}}
	if err := p.Load(); err != nil {
		log.Printf("[progress] %v (starting fresh)", err)
	}
	return p
}

func (p *Progress) Won(k MinigameKind) bool { return p.won[k] }

// WonCount reports how many kinds have been won at least once.
func (p *Progress) WonCount() int { return len(p.won) }

// Record marks k as won and saves. It reports whether k was new.
func (p *Progress) Record(k MinigameKind) bool {
	if p.won[k] {
		return false
	}
	p.won[k] = true
	if err := p.Save(); err != nil {
		log.Printf("[progress] %v", err)
	}
	return true
}

// Load replaces the in-memory state with the stored one. Unknown kind names
// are skipped.
func (p *Progress) Load() error {
	if p.manager == nil || !p.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}
	data, err := p.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	return p.decode(data)
}

func (p *Progress) decode(data []byte) error {
	var pd progressData
	if err := yaml.Unmarshal(data, &pd); err != nil {
		return fmt.Errorf("parse progress: %w", err)
	}
	won := map[MinigameKind]bool{}
	for _, name := range pd.Won {
		k, ok := ParseMinigameKind(name)
		if !ok {
			log.Printf("[progress] unknown minigame %q", name)
			continue
		}
		won[k] = true
	}
	p.won = won
	return nil
}

func (p *Progress) encode() ([]byte, error) {
	pd := progressData{Won: make([]string, 0, len(p.won))}
	for k := range p.won {
		pd.Won = append(pd.Won, k.String())
	}
	sort.Strings(pd.Won)
	return yaml.Marshal(pd)
}

// Save writes the won set. It is a no-op in memory mode.
func (p *Progress) Save() error {
	if p.manager == nil {
		return nil
	}
	data, err := p.encode()
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := p.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
