// Package audio provides best-effort sound support: filename-based asset
// discovery plus a Player interface with a no-op fallback. Nothing here may
// ever affect gameplay; every failure degrades to silence.
package audio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// preferredMusicNames are exact filenames checked before any extension scan.
var preferredMusicNames = []string{
	"slither-theme.mp3",
	"music.mp3",
	"music.ogg",
}

// musicExtensions are scanned in directory-sorted order when no preferred
// name is present.
var musicExtensions = []string{".mp3", ".ogg", ".wav", ".flac", ".mod"}

// explosionExtensions rank explosion candidates; lower index wins.
var explosionExtensions = []string{".wav", ".ogg", ".flac", ".mp3"}

// FindMusic locates an optional background music track in dir.
// Preference order: a known filename, then the first file (sorted by name)
// with a recognized extension. Returns "" when nothing matches.
func FindMusic(dir string) string {
	for _, name := range preferredMusicNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, ext := range musicExtensions {
			if strings.HasSuffix(lower, ext) {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}

// FindExplosion locates an optional explosion sound effect in dir: any
// audio file whose name contains "explosion", ranked wav > ogg > flac >
// mp3. Returns "" when nothing matches.
func FindExplosion(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	best := ""
	bestRank := len(explosionExtensions) + 1
	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		candidates = append(candidates, e.Name())
	}
	// Sorted so equal ranks resolve deterministically.
	sort.Strings(candidates)

	for _, name := range candidates {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, "explosion") {
			continue
		}
		rank := extensionRank(lower)
		if rank < bestRank {
			bestRank = rank
			best = name
		}
	}
	if best == "" {
		return ""
	}
	return filepath.Join(dir, best)
}

// extensionRank returns the preference rank of a lowercase filename, with
// unknown extensions ranked last.
func extensionRank(lower string) int {
	for i, ext := range explosionExtensions {
		if strings.HasSuffix(lower, ext) {
			return i
		}
	}
	return len(explosionExtensions)
}
