package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/OliveiraNt/kafka-utils/internal/application"
	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 350 * time.Millisecond

// Overlay adjusts a profile loaded from disk, typically with explicitly set flags.
type Overlay func(config.ClusterConfig) config.ClusterConfig

// ProfileRepository serves one named connection profile from the config file and keeps it
// current while the file changes.
type ProfileRepository struct {
	mu         sync.RWMutex
	configData config.FileConfig
	configPath string
	profile    string
	overlay    Overlay
	watcher    *fsnotify.Watcher
	onChange   func(config.ClusterConfig)
}

// NewProfileRepository creates a repository for profile inside the file at configPath.
// overlay may be nil.
func NewProfileRepository(configPath, profile string, overlay Overlay) *ProfileRepository {
	if overlay == nil {
		overlay = func(c config.ClusterConfig) config.ClusterConfig { return c }
	}
	return &ProfileRepository{
		configPath: configPath,
		profile:    profile,
		overlay:    overlay,
	}
}

// OnChange registers fn to be called after a reload changed the selected profile.
func (r *ProfileRepository) OnChange(fn func(config.ClusterConfig)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// LoadFromFile loads configuration from file
func (r *ProfileRepository) LoadFromFile() error {
	cfg, err := config.ReadConfig(r.configPath)
	if err != nil {
		return err
	}

	r.mu.Lock()
	old, hadOld := r.configData.FindCluster(r.profile)
	r.configData = cfg
	cur, hasCur := cfg.FindCluster(r.profile)
	onChange := r.onChange
	r.mu.Unlock()

	if hasCur && (!hadOld || !clusterConfigEqual(old, cur)) {
		utils.Logger.Info("profile loaded", "profile", r.profile, "brokers", len(cur.Brokers), "auth", cur.GetAuthType())
		if onChange != nil && hadOld {
			onChange(r.overlay(cur))
		}
	}
	if !hasCur {
		utils.Logger.Warn("profile missing from config file", "profile", r.profile, "path", r.configPath)
	}
	return nil
}

// FindByName retrieves a cluster configuration by name
func (r *ProfileRepository) FindByName(name string) (config.ClusterConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configData.FindCluster(name)
}

// FindAll retrieves all cluster configurations
func (r *ProfileRepository) FindAll() []config.ClusterConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]config.ClusterConfig, len(r.configData.Clusters))
	copy(out, r.configData.Clusters)
	return out
}

// Current returns the selected profile with the overlay applied. It fails when the profile
// is not in the file.
func (r *ProfileRepository) Current() (config.ClusterConfig, error) {
	c, ok := r.FindByName(r.profile)
	if !ok {
		return config.ClusterConfig{}, fmt.Errorf("%w: %q in %s", application.ErrProfileNotFound, r.profile, r.configPath)
	}
	return r.overlay(c), nil
}

// Watch sets a fsnotify watcher on the file for hot reload
func (r *ProfileRepository) Watch() error {
	abs, err := filepath.Abs(r.configPath)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return err
	}

	r.mu.Lock()
	r.watcher = w
	r.mu.Unlock()

	go func() {
		reload := func() {
			for i := 0; i < 10; i++ {
				if _, err := os.Stat(abs); err == nil {
					break
				}
				time.Sleep(100 * time.Millisecond)
			}

			utils.Logger.Debug("config file changed", "path", abs)
			if err := r.LoadFromFile(); err != nil {
				utils.Logger.Error("failed to reload config", "path", abs, "err", err)
			}
		}

		var timer *time.Timer
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					if timer != nil {
						timer.Stop()
					}
					return
				}
				if ev.Name != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if timer == nil {
					timer = time.AfterFunc(debounceDelay, reload)
				} else {
					timer.Reset(debounceDelay)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				utils.Logger.Warn("fsnotify error", "err", err)
			}
		}
	}()

	return nil
}

// Close stops watching the file.
func (r *ProfileRepository) Close() error {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	r.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}

// clusterConfigEqual compares the connection-relevant parts of two profiles
func clusterConfigEqual(a, b config.ClusterConfig) bool {
	if !equalStrings(a.Brokers, b.Brokers) || a.ClientID != b.ClientID || a.TimeoutMs != b.TimeoutMs {
		return false
	}
	return equalTLS(a.TLS, b.TLS) && equalSASL(a.SASL, b.SASL) && equalAWS(a.AWS, b.AWS)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	m := make(map[string]int)
	for _, s := range a {
		m[s]++
	}
	for _, s := range b {
		if m[s] == 0 {
			return false
		}
		m[s]--
	}
	return true
}

func equalTLS(a, b *config.TLSConfig) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalSASL(a, b *config.SASLConfig) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalAWS(a, b *config.AWSConfig) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
