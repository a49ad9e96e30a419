package tomlrepo

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"heavenearth/internal/app/ports"
)

const calendarFileName = "calendar.toml"

type calendarFile struct {
	StartTimestamp int64 `toml:"start_timestamp"`
}

// CalendarRepo persists the world start timestamp in calendar.toml.
type CalendarRepo struct {
	mu   sync.Mutex
	path string
}

func NewCalendarRepo(dataDir string) (*CalendarRepo, error) {
	if err := ensureDataDir(dataDir); err != nil {
		return nil, err
	}
	return &CalendarRepo{path: dataPath(dataDir, calendarFileName)}, nil
}

func (r *CalendarRepo) LoadOrCreateStart(_ context.Context, now time.Time) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		var file calendarFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return time.Time{}, fmt.Errorf("%w: parse %s: %v", ports.ErrStorageCorrupt, r.path, err)
		}
		if file.StartTimestamp > 0 {
			return time.Unix(file.StartTimestamp, 0).UTC(), nil
		}
	case !os.IsNotExist(err):
		return time.Time{}, fmt.Errorf("%w: read %s: %v", ports.ErrStorageCorrupt, r.path, err)
	}

	start := now.UTC().Truncate(time.Second)
	out, err := toml.Marshal(calendarFile{StartTimestamp: start.Unix()})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: encode calendar: %v", ports.ErrStorageWrite, err)
	}
	if err := writeFileAtomic(r.path, out); err != nil {
		return time.Time{}, fmt.Errorf("%w: commit %s: %v", ports.ErrStorageWrite, r.path, err)
	}
	return start, nil
}
