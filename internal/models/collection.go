package models

import "time"

// Collection is the persisted document: every playlist for one project
// scope, stored and rewritten as a whole. LastUpdated is part of the
// document and only advances on mutation, so re-saving a freshly
// loaded collection reproduces the persisted bytes exactly.
type Collection struct {
	Playlists   []*Playlist `json:"playlists"`
	LastUpdated time.Time   `json:"last_updated"`
}

// NewCollection returns an empty collection
func NewCollection() *Collection {
	return &Collection{Playlists: []*Playlist{}}
}

// Find returns the playlist with the given id, or nil
func (c *Collection) Find(id string) *Playlist {
	for _, p := range c.Playlists {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Remove deletes the playlist with the given id, reporting whether it existed
func (c *Collection) Remove(id string) bool {
	for i, p := range c.Playlists {
		if p.ID == id {
			c.Playlists = append(c.Playlists[:i], c.Playlists[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the collection
func (c *Collection) Clone() *Collection {
	dup := &Collection{
		Playlists:   make([]*Playlist, len(c.Playlists)),
		LastUpdated: c.LastUpdated,
	}
	for i, p := range c.Playlists {
		dup.Playlists[i] = p.Clone()
	}
	return dup
}

// Normalize repairs zero values on every playlist in the collection
func (c *Collection) Normalize() {
	if c.Playlists == nil {
		c.Playlists = []*Playlist{}
	}
	for _, p := range c.Playlists {
		p.Normalize()
	}
}
