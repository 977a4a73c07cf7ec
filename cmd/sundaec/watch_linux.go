//go:build linux

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const watchMask = unix.IN_MODIFY | unix.IN_CLOSE_WRITE | unix.IN_MOVE_SELF | unix.IN_DELETE_SELF

// fileWatcher calls onChange, debounced, whenever one file changes.
type fileWatcher struct {
	fd       int
	wd       int
	path     string
	delay    time.Duration
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
}

func newFileWatcher(path string, delay time.Duration, onChange func()) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC)
	if err != nil {
		return nil, errors.Wrap(err, "inotify_init")
	}
	fw := &fileWatcher{fd: fd, path: abs, delay: delay, onChange: onChange}
	if err := fw.add(); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return fw, nil
}

func (fw *fileWatcher) add() error {
	wd, err := unix.InotifyAddWatch(fw.fd, fw.path, watchMask)
	if err != nil {
		return errors.Wrapf(err, "watching %s", fw.path)
	}
	fw.wd = wd
	return nil
}

// run blocks, reading events until the watch cannot be kept alive.
func (fw *fileWatcher) run() error {
	buf := make([]byte, (unix.SizeofInotifyEvent+256)*8)
	for {
		n, err := unix.Read(fw.fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "reading inotify events")
		}

		for offset := 0; offset+unix.SizeofInotifyEvent <= n; {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			offset += unix.SizeofInotifyEvent + int(event.Len)
			if int(event.Wd) != fw.wd {
				continue // a replaced watch
			}

			switch {
			case event.Mask&(unix.IN_MOVE_SELF|unix.IN_DELETE_SELF|unix.IN_IGNORED) != 0:
				// Editors that save by renaming replace the file; follow
				// the new one.
				if err := fw.rewatch(); err != nil {
					return err
				}
				fw.changed()
			case event.Mask&(unix.IN_MODIFY|unix.IN_CLOSE_WRITE) != 0:
				fw.changed()
			}
		}
	}
}

func (fw *fileWatcher) rewatch() error {
	unix.InotifyRmWatch(fw.fd, uint32(fw.wd))
	for i := 0; i < 20; i++ {
		if _, err := os.Stat(fw.path); err == nil {
			return fw.add()
		}
		time.Sleep(50 * time.Millisecond)
	}
	return errors.Errorf("%s disappeared", fw.path)
}

func (fw *fileWatcher) changed() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, fw.onChange)
}

func (fw *fileWatcher) Close() error {
	return unix.Close(fw.fd)
}

// watch recompiles filename every time it changes. It only returns on error.
func watch(filename string, cfg *config, rebuild func()) error {
	var mu sync.Mutex
	fw, err := newFileWatcher(filename, cfg.WatchDelay, func() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(os.Stderr, "--- %s changed, rebuilding\n", filename)
		rebuild()
	})
	if err != nil {
		return err
	}
	defer fw.Close()
	return fw.run()
}
