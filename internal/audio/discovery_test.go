package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindMusicPrefersKnownNames(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "aaa.mp3", "music.mp3", "zzz.ogg")

	if got := FindMusic(dir); got != filepath.Join(dir, "music.mp3") {
		t.Errorf("FindMusic() = %q, expected music.mp3", got)
	}
}

func TestFindMusicFallsBackToExtensionScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.txt", "track.ogg")

	if got := FindMusic(dir); got != filepath.Join(dir, "track.ogg") {
		t.Errorf("FindMusic() = %q, expected track.ogg", got)
	}
}

func TestFindMusicEmptyDir(t *testing.T) {
	if got := FindMusic(t.TempDir()); got != "" {
		t.Errorf("FindMusic() = %q, expected empty", got)
	}
}

func TestFindMusicMissingDir(t *testing.T) {
	if got := FindMusic(filepath.Join(t.TempDir(), "missing")); got != "" {
		t.Errorf("FindMusic() = %q, expected empty", got)
	}
}

func TestFindExplosionRanking(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "explosion.mp3", "big-explosion.wav", "explosion.ogg")

	// wav outranks ogg and mp3.
	if got := FindExplosion(dir); got != filepath.Join(dir, "big-explosion.wav") {
		t.Errorf("FindExplosion() = %q, expected big-explosion.wav", got)
	}
}

func TestFindExplosionRequiresNameMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "boom.wav", "effects.ogg")

	if got := FindExplosion(dir); got != "" {
		t.Errorf("FindExplosion() = %q, expected empty", got)
	}
}

func TestFindExplosionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "EXPLOSION.WAV")

	if got := FindExplosion(dir); got != filepath.Join(dir, "EXPLOSION.WAV") {
		t.Errorf("FindExplosion() = %q, expected EXPLOSION.WAV", got)
	}
}
