package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/wankel/engine/core"
)

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeScene
)

var ErrWatcherClosed = errors.New("asset watcher already closed")

type AssetInfo struct {
	Path        string
	Type        AssetType
	LastChanged time.Time
}

// AssetWatcher reports writes to tracked asset files. Directories are
// watched rather than files so editors that save by renaming a temporary
// file over the original are still seen.
type AssetWatcher struct {
	assets map[string]AssetInfo
	dirs   map[string]int

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	changes  chan string
}

func NewAssetWatcher() (*AssetWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetWatcher{
		assets:   make(map[string]AssetInfo),
		dirs:     make(map[string]int),
		fsnotify: fsWatch,
		// one pending change per burst of writes is enough
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go am.start()
	return am, nil
}

// Track starts reporting changes to the file at path.
func (am *AssetWatcher) Track(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	assetType := determineAssetType(abs)
	if assetType == AssetTypeNone {
		return fmt.Errorf("track %s: unsupported asset type", path)
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return ErrWatcherClosed
	}
	if _, ok := am.assets[abs]; ok {
		return nil
	}
	dir := filepath.Dir(abs)
	if am.dirs[dir] == 0 {
		if err := am.fsnotify.Add(dir); err != nil {
			return fmt.Errorf("track %s: %w", path, err)
		}
	}
	am.dirs[dir]++
	am.assets[abs] = AssetInfo{Path: abs, Type: assetType, LastChanged: time.Now()}
	return nil
}

// Untrack stops reporting changes to path.
func (am *AssetWatcher) Untrack(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if _, ok := am.assets[abs]; !ok {
		return nil
	}
	delete(am.assets, abs)
	dir := filepath.Dir(abs)
	am.dirs[dir]--
	if am.dirs[dir] == 0 {
		delete(am.dirs, dir)
		if !am.isClosed {
			return am.fsnotify.Remove(dir)
		}
	}
	return nil
}

// Changes delivers the absolute path of a tracked file after it is
// written or recreated. Bursts are coalesced.
func (am *AssetWatcher) Changes() <-chan string {
	return am.changes
}

func (am *AssetWatcher) Info(path string) (AssetInfo, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return AssetInfo{}, false
	}
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[abs]
	return info, ok
}

func (am *AssetWatcher) Close() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	am.mutex.Unlock()

	close(am.done)
	<-am.stopped
	return nil
}

func (am *AssetWatcher) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && am.isTracked(e.Name) {
				core.LogWarn("tracked asset %s was removed or renamed", e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetWatcher) isTracked(name string) bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	_, ok := am.assets[filepath.Clean(name)]
	return ok
}

// Handle the creation or modification of a file
func (am *AssetWatcher) handleFileEvent(name string) {
	path := filepath.Clean(name)

	am.mutex.Lock()
	info, ok := am.assets[path]
	if ok {
		info.LastChanged = time.Now()
		am.assets[path] = info
	}
	am.mutex.Unlock()
	if !ok {
		return
	}

	select {
	case am.changes <- path:
	default:
	}
}

func determineAssetType(path string) AssetType {
	switch filepath.Ext(path) {
	case ".toml":
		return AssetTypeScene
	default:
		return AssetTypeNone
	}
}
