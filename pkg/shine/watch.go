package shine

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig starts an fsnotify watcher on the config file. When the file
// is written or recreated, it is reloaded and the new Config handed to
// onChange. Delivery happens on the watcher goroutine; the owner applies the
// new config from its own main thread.
func WatchConfig(path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting config watcher: %w", err)
	}

	// Watch the directory, not the file: editors and atomic saves replace
	// the file and would orphan a direct watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	base := filepath.Base(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				conf, err := LoadConfig(path)
				if err != nil {
					log.Printf("WARNING: Could not reload config %s: %v", path, err)
					continue
				}
				log.Printf("Config file changed on disk: %s", path)
				onChange(conf)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("WARNING: Config watcher error: %v", err)
			}
		}
	}()

	return nil
}
