package audio

import (
	"os"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"
)

// Player is the sound collaborator used by the platform. Implementations
// are best-effort: calls never block the frame loop and never fail loudly.
type Player interface {
	// StartMusic begins background music playback, if a track exists.
	StartMusic()
	// StopMusic stops background music playback.
	StopMusic()
	// PlayEat plays the food-eaten effect.
	PlayEat()
	// PlayExplosion plays the death effect, if a sound exists.
	PlayExplosion()
	// SetEnabled toggles all sound output.
	SetEnabled(on bool)
	// Enabled reports whether sound output is on.
	Enabled() bool
	// Close releases any playback processes.
	Close()
}

// Nop is the silent fallback Player selected when no playback backend or no
// assets are available.
type Nop struct{}

func (Nop) StartMusic()     {}
func (Nop) StopMusic()      {}
func (Nop) PlayEat()        {}
func (Nop) PlayExplosion()  {}
func (Nop) SetEnabled(bool) {}
func (Nop) Enabled() bool   { return false }
func (Nop) Close()          {}

// playbackCommands are probed in order; the first one on PATH wins.
var playbackCommands = []string{"afplay", "paplay", "aplay", "ffplay", "mpv"}

// New builds the best available Player for assets in dir. All discovery and
// probing happens here, at startup, so the frame loop stays I/O-free. Any
// degradation is logged and results in a quieter player, never an error.
func New(dir string, logger *log.Logger) Player {
	bin := findPlaybackCommand()
	if bin == "" {
		logger.Warn("no audio playback command found, sound disabled",
			"tried", playbackCommands)
		return Nop{}
	}

	music := FindMusic(dir)
	explosion := FindExplosion(dir)
	if music == "" && explosion == "" {
		logger.Warn("no audio assets found, sound disabled", "dir", dir)
		return Nop{}
	}

	logger.Info("audio ready", "backend", bin, "music", music, "explosion", explosion)
	return &execPlayer{
		bin:       bin,
		music:     music,
		explosion: explosion,
		enabled:   true,
	}
}

// findPlaybackCommand returns the first known playback binary on PATH.
func findPlaybackCommand() string {
	for _, name := range playbackCommands {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// execPlayer shells out to a system playback command. Effects are
// fire-and-forget child processes; music is a single tracked process so it
// can be stopped.
type execPlayer struct {
	bin       string
	music     string
	explosion string

	mu       sync.Mutex
	enabled  bool
	musicCmd *exec.Cmd
}

func (p *execPlayer) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.music == "" || p.musicCmd != nil {
		return
	}
	cmd := exec.Command(p.bin, p.music)
	if err := cmd.Start(); err != nil {
		return
	}
	p.musicCmd = cmd
	go func() {
		//nolint:errcheck // Best-effort reaping; the track simply ends.
		cmd.Wait()
		p.mu.Lock()
		if p.musicCmd == cmd {
			p.musicCmd = nil
		}
		p.mu.Unlock()
	}()
}

func (p *execPlayer) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusicLocked()
}

func (p *execPlayer) stopMusicLocked() {
	if p.musicCmd == nil {
		return
	}
	//nolint:errcheck // The process may already have exited.
	p.musicCmd.Process.Kill()
	p.musicCmd = nil
}

// PlayEat rings the terminal bell: a short beep that needs no asset file.
func (p *execPlayer) PlayEat() {
	p.mu.Lock()
	enabled := p.enabled
	p.mu.Unlock()
	if !enabled {
		return
	}
	//nolint:errcheck // Best-effort bell.
	os.Stdout.WriteString("\a")
}

func (p *execPlayer) PlayExplosion() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	if p.explosion == "" {
		// No sound file: fall back to the bell.
		//nolint:errcheck // Best-effort bell.
		os.Stdout.WriteString("\a")
		return
	}
	//nolint:errcheck // Fire-and-forget effect.
	exec.Command(p.bin, p.explosion).Start()
}

func (p *execPlayer) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
	if !on {
		p.stopMusicLocked()
	}
}

func (p *execPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *execPlayer) Close() {
	p.StopMusic()
}
